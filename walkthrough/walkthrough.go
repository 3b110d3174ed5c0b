// Package walkthrough implements the guided package-recommendation quiz.
// It serves the question sets and turns a completed answer sheet into a
// package/add-on recommendation for the quote page.
package walkthrough

// Option is one selectable answer to a question.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Question is one quiz screen. Multiple allows multi-select answers.
type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Multiple bool     `json:"multiple,omitempty"`
	Options  []Option `json:"options"`
}

// Answers maps question ids to the chosen value(s).
type Answers struct {
	// wedding flow
	GuestCount     string   `json:"guest_count"`
	CoverageNeeds  []string `json:"coverage_needs"`
	SpecialMoments []string `json:"special_moments"`
	Atmosphere     string   `json:"atmosphere"`
	MCImportance   string   `json:"mc_importance"`
	Lighting       string   `json:"lighting"`
	// both flows
	BudgetRange string `json:"budget_range"`
	// general flow
	EventSize  string   `json:"event_size"`
	Priorities []string `json:"priorities"`
	EventType  string   `json:"event_type"`
	Timeline   string   `json:"timeline"`
}

// Recommendation is the quiz outcome, expressed in quote-page ids.
type Recommendation struct {
	PackageID string   `json:"packageId"`
	Addons    []string `json:"addons"`
	EventType string   `json:"eventType"`
	Timeline  string   `json:"timeline,omitempty"`
	Reasoning []string `json:"reasoning"`
}

var weddingQuestions = []Question{
	{
		ID: "guest_count", Question: "How many guests are you expecting?",
		Options: []Option{
			{Value: "intimate", Label: "Under 75 guests", Description: "Intimate celebration"},
			{Value: "medium", Label: "75-150 guests", Description: "Perfect size wedding"},
			{Value: "large", Label: "150-250 guests", Description: "Grand celebration"},
			{Value: "xlarge", Label: "250+ guests", Description: "Large wedding party"},
		},
	},
	{
		ID: "coverage_needs", Question: "What parts of your wedding day do you need DJ coverage for?", Multiple: true,
		Options: []Option{
			{Value: "ceremony", Label: "Ceremony", Description: "Processional, vows, recessional"},
			{Value: "cocktail", Label: "Cocktail Hour", Description: "Background music & atmosphere"},
			{Value: "reception", Label: "Reception", Description: "Dancing, announcements, party"},
			{Value: "all_day", Label: "All Day Coverage", Description: "Ceremony through reception"},
		},
	},
	{
		ID: "special_moments", Question: "Which special moments matter most to you? (Select all that apply)", Multiple: true,
		Options: []Option{
			{Value: "first_dance", Label: "First Dance", Description: "Your perfect song"},
			{Value: "parent_dances", Label: "Parent Dances", Description: "Mother/son, father/daughter"},
			{Value: "bouquet_garter", Label: "Bouquet & Garter Toss", Description: "Fun traditions"},
			{Value: "cake_cutting", Label: "Cake Cutting", Description: "Sweet moment"},
			{Value: "grand_exit", Label: "Grand Exit", Description: "Memorable send-off"},
			{Value: "all_moments", Label: "All Special Moments", Description: "Every detail matters"},
		},
	},
	{
		ID: "atmosphere", Question: "What atmosphere are you envisioning for your reception?",
		Options: []Option{
			{Value: "elegant", Label: "Elegant & Sophisticated", Description: "Classic, refined ambiance"},
			{Value: "romantic", Label: "Romantic & Intimate", Description: "Soft lighting, beautiful mood"},
			{Value: "party", Label: "High Energy Party", Description: "Dance floor packed all night"},
			{Value: "balanced", Label: "Balanced Mix", Description: "Elegant dinner, fun dancing"},
		},
	},
	{
		ID: "mc_importance", Question: "How important is having a professional MC to coordinate your timeline?",
		Options: []Option{
			{Value: "essential", Label: "Absolutely Essential", Description: "Need smooth coordination"},
			{Value: "important", Label: "Very Important", Description: "Want professional announcements"},
			{Value: "nice", Label: "Nice to Have", Description: "Helpful but not critical"},
			{Value: "not_needed", Label: "Not Needed", Description: "Just music is fine"},
		},
	},
	{
		ID: "lighting", Question: "How important is uplighting to create the perfect atmosphere?",
		Options: []Option{
			{Value: "must_have", Label: "Must Have", Description: "Essential for the vibe"},
			{Value: "very_important", Label: "Very Important", Description: "Really want it"},
			{Value: "nice_bonus", Label: "Nice Bonus", Description: "If budget allows"},
			{Value: "not_priority", Label: "Not a Priority", Description: "Focus on music"},
		},
	},
	{
		ID: "budget_range", Question: "What's your wedding entertainment budget?",
		Options: []Option{
			{Value: "budget", Label: "Under $2,000", Description: "Basic package"},
			{Value: "standard", Label: "$2,000-$2,500", Description: "Most popular choice"},
			{Value: "premium", Label: "$2,500-$3,000", Description: "Premium experience"},
			{Value: "luxury", Label: "$3,000+", Description: "Full-service luxury wedding"},
		},
	},
}

var generalQuestions = []Question{
	{
		ID: "event_size", Question: "How many guests are you expecting?",
		Options: []Option{
			{Value: "small", Label: "Under 50 guests", Description: "Intimate gathering"},
			{Value: "medium", Label: "50-150 guests", Description: "Medium celebration"},
			{Value: "large", Label: "150-300 guests", Description: "Large event"},
			{Value: "xlarge", Label: "300+ guests", Description: "Grand celebration"},
		},
	},
	{
		ID: "budget_range", Question: "What's your budget range?",
		Options: []Option{
			{Value: "budget", Label: "Under $500", Description: "Essential package"},
			{Value: "standard", Label: "$500-$1,000", Description: "Popular choice"},
			{Value: "premium", Label: "$1,000-$1,500", Description: "Premium experience"},
			{Value: "luxury", Label: "$1,500+", Description: "Full-service luxury"},
		},
	},
	{
		ID: "priorities", Question: "What matters most to you? (Select all that apply)", Multiple: true,
		Options: []Option{
			{Value: "sound_quality", Label: "Crystal-clear sound", Description: "Professional audio"},
			{Value: "lighting", Label: "Uplighting & atmosphere", Description: "Beautiful ambiance"},
			{Value: "mc_service", Label: "Professional MC", Description: "Smooth coordination"},
			{Value: "music_selection", Label: "Custom playlist", Description: "Your favorite songs"},
			{Value: "experience", Label: "15+ years experience", Description: "Proven track record"},
			{Value: "equipment", Label: "Top-tier equipment", Description: "Best-in-class gear"},
		},
	},
	{
		ID: "event_type", Question: "What type of event is this?",
		Options: []Option{
			{Value: "wedding", Label: "Wedding", Description: "Your special day"},
			{Value: "corporate", Label: "Corporate Event", Description: "Professional gathering"},
			{Value: "party", Label: "Private Party", Description: "Celebration"},
			{Value: "school", Label: "School Dance/Event", Description: "Student event"},
		},
	},
	{
		ID: "timeline", Question: "How long do you need DJ services?",
		Options: []Option{
			{Value: "short", Label: "2-4 hours", Description: "Ceremony + reception"},
			{Value: "standard", Label: "4-6 hours", Description: "Full event coverage"},
			{Value: "extended", Label: "6+ hours", Description: "Extended celebration"},
		},
	},
}

// Questions returns the quiz for the given flow.
func Questions(isWedding bool) []Question {
	if isWedding {
		return weddingQuestions
	}
	return generalQuestions
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// tierPackageIDs maps general-flow tiers onto quote page package ids.
var tierPackageIDs = map[string]string{
	"premium":   "package3",
	"standard":  "package2",
	"essential": "package1",
}

// PackageIDForTier resolves a recommendation tier to a quote-page
// package id; wedding tiers are already package ids and pass through.
func PackageIDForTier(tier string) string {
	if id, ok := tierPackageIDs[tier]; ok {
		return id
	}
	return tier
}

// Recommend scores a completed answer sheet. Wedding answers follow the
// wedding rules; everything else uses the general tier rules.
func Recommend(answers Answers, isWedding bool) Recommendation {
	if isWedding {
		return recommendWedding(answers)
	}
	return recommendGeneral(answers)
}

func recommendWedding(a Answers) Recommendation {
	// Package 2 is the default; the outliers below bump up or down.
	tier := "package2"
	switch {
	case a.BudgetRange == "luxury",
		a.BudgetRange == "premium" && (a.GuestCount == "xlarge" || contains(a.CoverageNeeds, "all_day")),
		contains(a.CoverageNeeds, "ceremony") && contains(a.CoverageNeeds, "reception") && contains(a.CoverageNeeds, "cocktail"),
		a.MCImportance == "essential" && a.Lighting == "must_have" && a.GuestCount == "large",
		a.Atmosphere == "elegant" && a.GuestCount == "xlarge",
		contains(a.SpecialMoments, "all_moments") && a.Lighting == "must_have":
		tier = "package3"
	case a.BudgetRange == "budget",
		a.GuestCount == "intimate" && !contains(a.CoverageNeeds, "ceremony") && a.Lighting != "must_have",
		!contains(a.CoverageNeeds, "reception") && !contains(a.CoverageNeeds, "all_day"):
		tier = "package1"
	}

	var addons []string
	if a.Lighting == "must_have" || a.Lighting == "very_important" || a.Atmosphere == "romantic" || a.Atmosphere == "elegant" {
		addons = append(addons, "uplighting")
	}
	if a.MCImportance == "essential" || a.MCImportance == "important" || contains(a.CoverageNeeds, "reception") {
		addons = append(addons, "mc_service")
	}
	if contains(a.CoverageNeeds, "ceremony") {
		addons = append(addons, "ceremony_sound")
	}
	if a.GuestCount == "large" || a.GuestCount == "xlarge" {
		addons = append(addons, "wireless_mics")
	}
	if contains(a.SpecialMoments, "all_moments") || len(a.SpecialMoments) >= 4 {
		addons = append(addons, "timeline_coordination")
	}
	if contains(a.CoverageNeeds, "cocktail") {
		addons = append(addons, "cocktail_hour")
	}

	return Recommendation{
		PackageID: PackageIDForTier(tier),
		Addons:    addons,
		EventType: "wedding",
		Reasoning: weddingReasoning(a),
	}
}

func recommendGeneral(a Answers) Recommendation {
	tier := "standard"
	if a.BudgetRange == "luxury" || a.EventSize == "xlarge" ||
		(contains(a.Priorities, "lighting") && contains(a.Priorities, "mc_service")) {
		tier = "premium"
	} else if a.BudgetRange == "budget" || a.EventSize == "small" {
		tier = "essential"
	}

	eventType := a.EventType
	if eventType == "" {
		eventType = "event"
	}

	var addons []string
	if contains(a.Priorities, "lighting") {
		addons = append(addons, "uplighting")
	}
	if contains(a.Priorities, "mc_service") && eventType == "wedding" {
		addons = append(addons, "mc_service")
	}
	if a.EventSize == "large" || a.EventSize == "xlarge" {
		addons = append(addons, "wireless_mics")
	}
	return Recommendation{
		PackageID: PackageIDForTier(tier),
		Addons:    addons,
		EventType: eventType,
		Timeline:  a.Timeline,
		Reasoning: generalReasoning(a),
	}
}

func weddingReasoning(a Answers) []string {
	var reasons []string
	if a.GuestCount == "large" || a.GuestCount == "xlarge" {
		reasons = append(reasons, "Your guest count requires professional-grade sound to ensure everyone hears every special moment")
	} else if a.GuestCount == "intimate" {
		reasons = append(reasons, "Perfect for an intimate celebration where every detail matters")
	}
	if contains(a.CoverageNeeds, "all_day") {
		reasons = append(reasons, "All-day coverage ensures seamless transitions from ceremony through reception")
	} else if contains(a.CoverageNeeds, "ceremony") && contains(a.CoverageNeeds, "reception") {
		reasons = append(reasons, "Coverage for both ceremony and reception ensures your entire day flows perfectly")
	}
	if contains(a.SpecialMoments, "all_moments") || len(a.SpecialMoments) >= 4 {
		reasons = append(reasons, "With multiple special moments planned, professional coordination is essential")
	}
	if a.Atmosphere == "elegant" || a.Atmosphere == "romantic" {
		reasons = append(reasons, "Uplighting will transform your venue into the elegant atmosphere you envision")
	} else if a.Atmosphere == "party" {
		reasons = append(reasons, "Premium sound and lighting will keep your dance floor packed all night")
	}
	if a.MCImportance == "essential" || a.MCImportance == "important" {
		reasons = append(reasons, "Professional MC services ensure your timeline runs smoothly and all special moments are perfectly timed")
	}
	if a.Lighting == "must_have" || a.Lighting == "very_important" {
		reasons = append(reasons, "Uplighting creates the beautiful ambiance that makes wedding photos stunning")
	}
	if a.BudgetRange == "premium" || a.BudgetRange == "luxury" {
		reasons = append(reasons, "Your budget allows for the premium experience your special day deserves")
	}
	if len(reasons) == 0 {
		reasons = []string{"This package is perfectly tailored for your wedding day"}
	}
	return reasons
}

func generalReasoning(a Answers) []string {
	var reasons []string
	if a.EventSize == "large" || a.EventSize == "xlarge" {
		reasons = append(reasons, "Your event size requires professional-grade sound and equipment")
	}
	if contains(a.Priorities, "lighting") {
		reasons = append(reasons, "Uplighting will create the perfect atmosphere for your event")
	}
	if contains(a.Priorities, "mc_service") {
		reasons = append(reasons, "Professional MC services ensure smooth coordination")
	}
	if a.BudgetRange == "premium" || a.BudgetRange == "luxury" {
		reasons = append(reasons, "Your budget allows for our premium experience")
	}
	if len(reasons) == 0 {
		reasons = []string{"Based on your event details, this package fits perfectly"}
	}
	return reasons
}
