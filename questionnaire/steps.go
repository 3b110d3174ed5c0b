package questionnaire

import "strings"

// Form is the answer set the step logic inspects. Keys in the map
// fields are the field ids from the active Config.
type Form struct {
	BigNoSongs        string            `json:"bigNoSongs"`
	SpecialDances     []string          `json:"specialDances"`
	SpecialDanceSongs map[string]string `json:"specialDanceSongs"`
	PlaylistLinks     map[string]string `json:"playlistLinks"`
	CeremonyMusicType string            `json:"ceremonyMusicType"`
	CeremonyMusic     map[string]string `json:"ceremonyMusic"`
	MCIntroduction    string            `json:"mcIntroduction"`
}

// PlanOptions adjusts which steps appear in the wizard.
type PlanOptions struct {
	// CeremonyAudio is whether the lead's package or add-ons include
	// ceremony sound; without it the ceremony steps are dropped.
	CeremonyAudio bool
	// Focused trims the plan to steps with missing answers plus review,
	// for leads returning to finish an incomplete questionnaire.
	Focused bool
}

func hasAnyValue(m map[string]string) bool {
	for _, v := range m {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the form carries no answers at all.
func (f Form) IsEmpty() bool {
	return strings.TrimSpace(f.BigNoSongs) == "" &&
		len(f.SpecialDances) == 0 &&
		!hasAnyValue(f.SpecialDanceSongs) &&
		!hasAnyValue(f.PlaylistLinks) &&
		strings.TrimSpace(f.CeremonyMusicType) == "" &&
		!hasAnyValue(f.CeremonyMusic) &&
		strings.TrimSpace(f.MCIntroduction) == ""
}

// missing reports whether a step still needs input from this form.
func (f Form) missing(stepID string) bool {
	switch stepID {
	case StepBigNo:
		return strings.TrimSpace(f.BigNoSongs) == ""
	case StepSpecialDances:
		return len(f.SpecialDances) == 0
	case StepSpecialDanceSongs:
		if len(f.SpecialDances) == 0 {
			return false
		}
		for _, dance := range f.SpecialDances {
			if strings.TrimSpace(f.SpecialDanceSongs[dance]) == "" {
				return true
			}
		}
		return false
	case StepMCIntroduction:
		return strings.TrimSpace(f.MCIntroduction) == ""
	case StepPlaylists:
		return !hasAnyValue(f.PlaylistLinks)
	case StepCeremonyType:
		return strings.TrimSpace(f.CeremonyMusicType) == ""
	case StepCeremonyFields, StepCeremonyDetails:
		return f.CeremonyMusicType == CeremonyPreRecorded && !hasAnyValue(f.CeremonyMusic)
	default:
		return false
	}
}

// BuildPlan returns the ordered steps this lead should see.
func BuildPlan(cfg Config, form Form, opts PlanOptions) []Step {
	plan := make([]Step, 0, len(cfg.Steps))
	for _, step := range cfg.Steps {
		switch step.ID {
		case StepCeremonyType, StepCeremonyFields, StepCeremonyDetails:
			if !cfg.HasCeremonyMusic || !opts.CeremonyAudio {
				continue
			}
		}
		if opts.Focused {
			switch step.ID {
			case StepReview:
				// always keep the terminal step
			case StepWelcome, StepEventDetails:
				continue
			default:
				if !form.missing(step.ID) {
					continue
				}
			}
		}
		plan = append(plan, step)
	}
	return plan
}

// shouldSkip marks steps that the current answers make irrelevant.
// Clearing every special dance skips the song-entry step; a ceremony
// without pre-recorded music skips the song-detail steps.
func shouldSkip(stepID string, form Form) bool {
	switch stepID {
	case StepSpecialDanceSongs:
		return len(form.SpecialDances) == 0
	case StepCeremonyFields, StepCeremonyDetails:
		return form.CeremonyMusicType != CeremonyPreRecorded
	}
	return false
}

// Next returns the index of the step after current, skipping steps the
// answers made irrelevant. Clamps at the last step.
func Next(plan []Step, current int, form Form) int {
	for i := current + 1; i < len(plan); i++ {
		if !shouldSkip(plan[i].ID, form) {
			return i
		}
	}
	return len(plan) - 1
}

// Prev returns the index of the step before current, applying the same
// skip rules in reverse. Clamps at zero.
func Prev(plan []Step, current int, form Form) int {
	for i := current - 1; i >= 0; i-- {
		if !shouldSkip(plan[i].ID, form) {
			return i
		}
	}
	return 0
}

// CanProceed reports whether the wizard may advance past a step.
// Only the ceremony type picker is a hard gate.
func CanProceed(stepID string, form Form) bool {
	if stepID == StepCeremonyType {
		return strings.TrimSpace(form.CeremonyMusicType) != ""
	}
	return true
}
