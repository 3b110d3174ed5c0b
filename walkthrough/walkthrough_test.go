package walkthrough

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendWeddingDefaultsToPackage2(t *testing.T) {
	rec := Recommend(Answers{
		GuestCount:    "medium",
		CoverageNeeds: []string{"reception"},
		BudgetRange:   "standard",
		Atmosphere:    "balanced",
	}, true)
	assert.Equal(t, "package2", rec.PackageID)
	assert.Equal(t, "wedding", rec.EventType)
	assert.NotEmpty(t, rec.Reasoning)
}

func TestRecommendWeddingPackage3Triggers(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
	}{
		{"luxury budget", Answers{BudgetRange: "luxury", CoverageNeeds: []string{"reception"}}},
		{"premium budget with xlarge guest count", Answers{BudgetRange: "premium", GuestCount: "xlarge", CoverageNeeds: []string{"reception"}}},
		{"full day coverage mix", Answers{CoverageNeeds: []string{"ceremony", "reception", "cocktail"}}},
		{"essential mc, lighting and large crowd", Answers{MCImportance: "essential", Lighting: "must_have", GuestCount: "large", CoverageNeeds: []string{"reception"}}},
		{"elegant xlarge", Answers{Atmosphere: "elegant", GuestCount: "xlarge", CoverageNeeds: []string{"reception"}}},
		{"all moments with must-have lighting", Answers{SpecialMoments: []string{"all_moments"}, Lighting: "must_have", CoverageNeeds: []string{"reception"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "package3", Recommend(tt.answers, true).PackageID)
		})
	}
}

func TestRecommendWeddingPackage1Triggers(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
	}{
		{"tight budget", Answers{BudgetRange: "budget", CoverageNeeds: []string{"reception"}}},
		{"intimate no ceremony no lighting", Answers{GuestCount: "intimate", CoverageNeeds: []string{"cocktail"}, Lighting: "not_priority"}},
		{"no reception coverage", Answers{CoverageNeeds: []string{"ceremony"}, GuestCount: "medium"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "package1", Recommend(tt.answers, true).PackageID)
		})
	}
}

func TestRecommendWeddingAddons(t *testing.T) {
	rec := Recommend(Answers{
		GuestCount:     "large",
		CoverageNeeds:  []string{"ceremony", "reception", "cocktail"},
		SpecialMoments: []string{"first_dance", "parent_dances", "cake_cutting", "grand_exit"},
		Atmosphere:     "romantic",
		MCImportance:   "essential",
		Lighting:       "must_have",
		BudgetRange:    "premium",
	}, true)

	assert.Equal(t, "package3", rec.PackageID)
	assert.Equal(t, []string{
		"uplighting", "mc_service", "ceremony_sound",
		"wireless_mics", "timeline_coordination", "cocktail_hour",
	}, rec.Addons)
}

func TestRecommendGeneralTiers(t *testing.T) {
	t.Run("default is standard", func(t *testing.T) {
		rec := Recommend(Answers{EventSize: "medium", BudgetRange: "standard", EventType: "corporate"}, false)
		assert.Equal(t, "package2", rec.PackageID)
		assert.Equal(t, "corporate", rec.EventType)
	})

	t.Run("luxury budget goes premium", func(t *testing.T) {
		rec := Recommend(Answers{BudgetRange: "luxury"}, false)
		assert.Equal(t, "package3", rec.PackageID)
	})

	t.Run("lighting plus mc priorities go premium", func(t *testing.T) {
		rec := Recommend(Answers{Priorities: []string{"lighting", "mc_service"}, EventSize: "medium"}, false)
		assert.Equal(t, "package3", rec.PackageID)
	})

	t.Run("small event goes essential", func(t *testing.T) {
		rec := Recommend(Answers{EventSize: "small", BudgetRange: "standard"}, false)
		assert.Equal(t, "package1", rec.PackageID)
	})

	t.Run("large event gets wireless mics", func(t *testing.T) {
		rec := Recommend(Answers{EventSize: "large", Priorities: []string{"lighting"}}, false)
		assert.Contains(t, rec.Addons, "wireless_mics")
		assert.Contains(t, rec.Addons, "uplighting")
	})

	t.Run("mc priority adds mc_service only for weddings", func(t *testing.T) {
		rec := Recommend(Answers{Priorities: []string{"mc_service"}, EventType: "wedding", EventSize: "medium"}, false)
		assert.Contains(t, rec.Addons, "mc_service")

		rec = Recommend(Answers{Priorities: []string{"mc_service"}, EventType: "corporate", EventSize: "medium"}, false)
		assert.NotContains(t, rec.Addons, "mc_service")
	})

	t.Run("missing event type falls back to event", func(t *testing.T) {
		rec := Recommend(Answers{EventSize: "medium"}, false)
		assert.Equal(t, "event", rec.EventType)
	})
}

func TestPackageIDForTier(t *testing.T) {
	assert.Equal(t, "package3", PackageIDForTier("premium"))
	assert.Equal(t, "package2", PackageIDForTier("standard"))
	assert.Equal(t, "package1", PackageIDForTier("essential"))
	assert.Equal(t, "package2", PackageIDForTier("package2"))
}

func TestQuestions(t *testing.T) {
	wedding := Questions(true)
	assert.Len(t, wedding, 7)
	assert.Equal(t, "guest_count", wedding[0].ID)

	general := Questions(false)
	assert.Len(t, general, 5)
	assert.Equal(t, "event_size", general[0].ID)
}
