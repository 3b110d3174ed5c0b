package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigForAliases(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"wedding", "wedding"},
		{"Wedding", "wedding"},
		{"", "wedding"},
		{"corporate", "corporate"},
		{"corporate_event", "corporate"},
		{"school", "school_dance"},
		{"school_dance", "school_dance"},
		{"holiday", "holiday_party"},
		{"holiday_party", "holiday_party"},
		{"private", "private_party"},
		{"private_party", "private_party"},
		{"other", "other"},
		{"quinceanera", "other"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFor(tt.input).EventType)
		})
	}
}

func TestOnlyWeddingHasCeremonyMusic(t *testing.T) {
	assert.True(t, ConfigFor("wedding").HasCeremonyMusic)
	for _, eventType := range []string{"corporate", "school_dance", "holiday_party", "private_party", "other"} {
		cfg := ConfigFor(eventType)
		assert.False(t, cfg.HasCeremonyMusic, eventType)
		assert.Empty(t, cfg.CeremonyMusicFields, eventType)
	}
}

func TestConfigShapes(t *testing.T) {
	wedding := ConfigFor("wedding")
	assert.Len(t, wedding.Steps, 11)
	assert.Len(t, wedding.SpecialDanceFields, 9)
	assert.Len(t, wedding.CeremonyMusicFields, 6)
	assert.Equal(t, StepReview, wedding.Steps[len(wedding.Steps)-1].ID)

	corporate := ConfigFor("corporate")
	assert.Len(t, corporate.Steps, 8)
	assert.Equal(t, StepReview, corporate.Steps[len(corporate.Steps)-1].ID)
}
