package pricing

import (
	"testing"
	"time"

	"djquote-backend/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("christmas party is a holiday, not a private party", func(t *testing.T) {
		c := Classify("Christmas Party")
		assert.True(t, c.IsHoliday)
		assert.False(t, c.IsPrivateParty)
		assert.False(t, c.IsCorporate)
		assert.False(t, c.IsSchool)
	})

	t.Run("prom is a school event", func(t *testing.T) {
		c := Classify("Senior Prom")
		assert.True(t, c.IsSchool)
		assert.False(t, c.IsPrivateParty)
	})

	t.Run("birthday party is private", func(t *testing.T) {
		c := Classify("40th Birthday Party")
		assert.True(t, c.IsPrivateParty)
		assert.False(t, c.IsHoliday)
	})

	t.Run("corporate gala", func(t *testing.T) {
		c := Classify("Annual Company Gala")
		assert.True(t, c.IsCorporate)
	})

	t.Run("wedding", func(t *testing.T) {
		c := Classify("Wedding Reception")
		assert.True(t, c.IsWedding)
	})

	t.Run("empty string matches nothing", func(t *testing.T) {
		assert.Equal(t, Classification{}, Classify(""))
	})
}

func TestCategory(t *testing.T) {
	assert.Equal(t, catalog.CategoryWedding, Category("Wedding"))
	assert.Equal(t, catalog.CategoryHoliday, Category("Holiday Party"))
	assert.Equal(t, catalog.CategorySchool, Category("Homecoming Dance"))
	assert.Equal(t, catalog.CategoryCorporate, Category("Corporate Event"))
	assert.Equal(t, catalog.CategoryPrivateParty, Category("Birthday Party"))
	assert.Equal(t, catalog.CategoryPrivateParty, Category("something else"))
}

func TestThemeForDate(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		key  string
	}{
		{"halloween", date(2025, time.October, 31), "halloween"},
		{"thanksgiving", date(2025, time.November, 15), "thanksgiving"},
		{"christmas", date(2025, time.December, 24), "christmas"},
		{"new year late december", date(2025, time.December, 31), "new_year"},
		{"new year early january", date(2026, time.January, 3), "new_year"},
		{"valentines", date(2026, time.February, 14), "valentines"},
		{"st patricks", date(2026, time.March, 17), "st_patricks"},
		{"july 4th", date(2026, time.July, 4), "july_4th"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := ThemeForDate(tt.date)
			require.NotNil(t, theme)
			assert.Equal(t, tt.key, theme.Key)
		})
	}

	t.Run("plain spring date has no theme", func(t *testing.T) {
		assert.Nil(t, ThemeForDate(date(2026, time.April, 20)))
	})
}

func TestThemeForEvent(t *testing.T) {
	t.Run("dated event in a themed window gets that theme", func(t *testing.T) {
		d := date(2025, time.December, 20)
		theme := ThemeForEvent("Holiday Party", &d)
		require.NotNil(t, theme)
		assert.Equal(t, "christmas", theme.Key)
	})

	t.Run("undated holiday event falls back to generic", func(t *testing.T) {
		theme := ThemeForEvent("Holiday Party", nil)
		require.NotNil(t, theme)
		assert.Equal(t, "holiday", theme.Key)
	})

	t.Run("holiday event outside themed windows falls back to generic", func(t *testing.T) {
		d := date(2026, time.April, 20)
		theme := ThemeForEvent("Holiday Party", &d)
		require.NotNil(t, theme)
		assert.Equal(t, "holiday", theme.Key)
	})

	t.Run("non-holiday event off-season has no theme", func(t *testing.T) {
		d := date(2026, time.April, 20)
		assert.Nil(t, ThemeForEvent("Wedding", &d))
	})
}
