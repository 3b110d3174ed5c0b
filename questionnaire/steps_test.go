package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepIDs(steps []Step) []string {
	ids := make([]string, 0, len(steps))
	for _, s := range steps {
		ids = append(ids, s.ID)
	}
	return ids
}

func planFor(eventType string, form Form, opts PlanOptions) []Step {
	return BuildPlan(ConfigFor(eventType), form, opts)
}

func TestBuildPlanWeddingWithCeremonyAudio(t *testing.T) {
	plan := planFor("wedding", Form{}, PlanOptions{CeremonyAudio: true})
	assert.Equal(t, []string{
		StepWelcome, StepEventDetails, StepBigNo, StepSpecialDances,
		StepSpecialDanceSongs, StepPlaylists, StepMCIntroduction,
		StepCeremonyType, StepCeremonyFields, StepCeremonyDetails, StepReview,
	}, stepIDs(plan))
}

func TestBuildPlanDropsCeremonyWithoutAudioService(t *testing.T) {
	plan := planFor("wedding", Form{}, PlanOptions{CeremonyAudio: false})
	ids := stepIDs(plan)
	assert.NotContains(t, ids, StepCeremonyType)
	assert.NotContains(t, ids, StepCeremonyFields)
	assert.NotContains(t, ids, StepCeremonyDetails)
	assert.Contains(t, ids, StepReview)
}

func TestBuildPlanNonWeddingHasNoCeremonySteps(t *testing.T) {
	plan := planFor("corporate", Form{}, PlanOptions{CeremonyAudio: true})
	ids := stepIDs(plan)
	assert.NotContains(t, ids, StepCeremonyType)
	assert.Len(t, plan, 8)
}

func TestBuildPlanFocusedKeepsOnlyMissingSteps(t *testing.T) {
	form := Form{
		BigNoSongs:        "no line dances please",
		SpecialDances:     []string{"first_dance"},
		SpecialDanceSongs: map[string]string{"first_dance": "Perfect - Ed Sheeran"},
		MCIntroduction:    "Mr & Mrs Smith",
	}
	plan := planFor("wedding", form, PlanOptions{CeremonyAudio: false, Focused: true})
	// Only playlists is still unanswered; review is always terminal
	assert.Equal(t, []string{StepPlaylists, StepReview}, stepIDs(plan))
}

func TestBuildPlanFocusedIncludesUnansweredDanceSongs(t *testing.T) {
	form := Form{
		BigNoSongs:     "none",
		SpecialDances:  []string{"first_dance", "father_daughter"},
		MCIntroduction: "intro",
		PlaylistLinks:  map[string]string{"spotify": "https://open.spotify.com/x"},
	}
	plan := planFor("wedding", form, PlanOptions{CeremonyAudio: false, Focused: true})
	assert.Equal(t, []string{StepSpecialDanceSongs, StepReview}, stepIDs(plan))
}

func TestNextSkipsDanceSongsWithoutDances(t *testing.T) {
	cfg := ConfigFor("wedding")
	plan := BuildPlan(cfg, Form{}, PlanOptions{CeremonyAudio: false})
	// plan: welcome, event_details, big_no, special_dances, special_dance_songs, playlists, mc_introduction, review
	require.Equal(t, StepSpecialDances, plan[3].ID)

	// no dances selected: advancing lands directly on playlists
	form := Form{}
	next := Next(plan, 3, form)
	assert.Equal(t, StepPlaylists, plan[next].ID)

	// re-selecting a dance un-skips the songs step
	form.SpecialDances = []string{"first_dance"}
	next = Next(plan, 3, form)
	assert.Equal(t, StepSpecialDanceSongs, plan[next].ID)
}

func TestNextSkipsCeremonyDetailsUnlessPreRecorded(t *testing.T) {
	plan := BuildPlan(ConfigFor("wedding"), Form{}, PlanOptions{CeremonyAudio: true})
	ceremonyTypeIdx := -1
	for i, s := range plan {
		if s.ID == StepCeremonyType {
			ceremonyTypeIdx = i
		}
	}
	require.NotEqual(t, -1, ceremonyTypeIdx)

	form := Form{CeremonyMusicType: CeremonyLiveMusician}
	next := Next(plan, ceremonyTypeIdx, form)
	assert.Equal(t, StepReview, plan[next].ID)

	form.CeremonyMusicType = CeremonyPreRecorded
	next = Next(plan, ceremonyTypeIdx, form)
	assert.Equal(t, StepCeremonyFields, plan[next].ID)
}

func TestNextClampsAtLastStep(t *testing.T) {
	plan := BuildPlan(ConfigFor("corporate"), Form{}, PlanOptions{})
	last := len(plan) - 1
	assert.Equal(t, last, Next(plan, last, Form{}))
}

func TestPrevAppliesSkipRulesInReverse(t *testing.T) {
	plan := BuildPlan(ConfigFor("wedding"), Form{}, PlanOptions{CeremonyAudio: false})
	playlistsIdx := -1
	for i, s := range plan {
		if s.ID == StepPlaylists {
			playlistsIdx = i
		}
	}
	require.NotEqual(t, -1, playlistsIdx)

	// no dances selected: going back from playlists skips the songs step
	prev := Prev(plan, playlistsIdx, Form{})
	assert.Equal(t, StepSpecialDances, plan[prev].ID)

	assert.Equal(t, 0, Prev(plan, 0, Form{}))
}

func TestCanProceed(t *testing.T) {
	assert.False(t, CanProceed(StepCeremonyType, Form{}))
	assert.True(t, CanProceed(StepCeremonyType, Form{CeremonyMusicType: CeremonyBoth}))
	assert.True(t, CanProceed(StepBigNo, Form{}))
}

func TestFormIsEmpty(t *testing.T) {
	assert.True(t, Form{}.IsEmpty())
	assert.True(t, Form{BigNoSongs: "   "}.IsEmpty())
	assert.True(t, Form{PlaylistLinks: map[string]string{"spotify": ""}}.IsEmpty())
	assert.False(t, Form{BigNoSongs: "chicken dance"}.IsEmpty())
	assert.False(t, Form{SpecialDances: []string{"first_dance"}}.IsEmpty())
	assert.False(t, Form{CeremonyMusicType: CeremonyPreRecorded}.IsEmpty())
}
