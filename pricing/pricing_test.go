package pricing

import (
	"testing"

	"djquote-backend/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtotal(t *testing.T) {
	assert.Equal(t, 2500.0, Subtotal(2500, nil))
	assert.Equal(t, 3300.0, Subtotal(2500, []float64{800}))
	assert.Equal(t, 3900.0, Subtotal(2500, []float64{800, 400, 200}))
}

func TestDiscountAmount(t *testing.T) {
	tests := []struct {
		name         string
		subtotal     float64
		discountType string
		value        float64
		want         float64
	}{
		{"percentage", 2000, DiscountPercentage, 10, 200},
		{"percentage of zero", 0, DiscountPercentage, 50, 0},
		{"flat", 2000, DiscountFlat, 150, 150},
		{"flat exceeding subtotal is not clamped", 100, DiscountFlat, 500, 500},
		{"unknown type", 2000, "coupon", 50, 0},
		{"empty type", 2000, "", 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountAmount(tt.subtotal, tt.discountType, tt.value))
		})
	}
}

func TestTotalFlooredAtZero(t *testing.T) {
	assert.Equal(t, 1800.0, Total(2000, 200))
	assert.Equal(t, 0.0, Total(100, 500))
	assert.Equal(t, 0.0, Total(0, 0))
}

func TestQuoteTotal(t *testing.T) {
	// package2 + photo booth, 10% off
	total := QuoteTotal(2500, []float64{800}, DiscountPercentage, 10)
	assert.Equal(t, 2970.0, total)

	// flat discount larger than everything clamps to zero
	assert.Equal(t, 0.0, QuoteTotal(100, nil, DiscountFlat, 9999))
}

func TestALaCarteTotal(t *testing.T) {
	items := []catalog.BreakdownItem{
		{Item: "DJ", Price: 1500},
		{Item: "Lighting", Price: 350},
	}
	assert.Equal(t, 1850.0, ALaCarteTotal(items))
	assert.Equal(t, 0.0, ALaCarteTotal(nil))
}

func TestBestPackageMatch(t *testing.T) {
	packages := catalog.Packages(catalog.CategoryWedding)

	t.Run("ceremony addon points at package2", func(t *testing.T) {
		selected := []catalog.Addon{
			{ID: "ceremony_sound", Name: "Ceremony Audio", Description: "Dedicated ceremony sound system"},
		}
		match := BestPackageMatch(selected, packages)
		require.NotNil(t, match)
		assert.Equal(t, "package2", match.ID)
	})

	t.Run("smoke effects push to package3", func(t *testing.T) {
		selected := []catalog.Addon{
			{ID: "ceremony_sound", Name: "Ceremony Audio", Description: "Dedicated ceremony sound system"},
			{ID: "smoke-machine", Name: "Smoke Machine", Description: "Atmospheric smoke effects"},
		}
		match := BestPackageMatch(selected, packages)
		require.NotNil(t, match)
		assert.Equal(t, "package3", match.ID)
	})

	t.Run("no matching addons yields no suggestion", func(t *testing.T) {
		selected := []catalog.Addon{
			{ID: "photo-booth", Name: "Photo Booth", Description: "Props and instant prints"},
		}
		assert.Nil(t, BestPackageMatch(selected, packages))
	})

	t.Run("empty selection yields no suggestion", func(t *testing.T) {
		assert.Nil(t, BestPackageMatch(nil, packages))
	})
}

func TestCustomizeBreakdown(t *testing.T) {
	pkg, ok := catalog.FindPackage(catalog.CategoryWedding, "package2")
	require.True(t, ok)

	t.Run("removing an item subtracts its price", func(t *testing.T) {
		price, aLaCarte, kept := CustomizeBreakdown(pkg, []string{"Monogram Projection"})
		assert.Equal(t, 2150.0, price)
		assert.Equal(t, 2650.0, aLaCarte)
		assert.Len(t, kept, 4)
	})

	t.Run("idempotent from the base catalog", func(t *testing.T) {
		first, _, _ := CustomizeBreakdown(pkg, []string{"Monogram Projection"})
		second, _, _ := CustomizeBreakdown(pkg, []string{"Monogram Projection"})
		assert.Equal(t, first, second)
	})

	t.Run("removal names are case-insensitive", func(t *testing.T) {
		price, _, _ := CustomizeBreakdown(pkg, []string{"monogram projection"})
		assert.Equal(t, 2150.0, price)
	})

	t.Run("removing everything floors at zero", func(t *testing.T) {
		var all []string
		for _, item := range pkg.Breakdown {
			all = append(all, item.Item)
		}
		price, _, kept := CustomizeBreakdown(pkg, all)
		assert.GreaterOrEqual(t, price, 0.0)
		assert.Empty(t, kept)
	})
}
