// Package questionnaire holds the per-event-type wizard definitions and
// the step navigation rules the frontend follows.
package questionnaire

import "strings"

// Field is one labeled input on a wizard step.
type Field struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Tooltip     string `json:"tooltip,omitempty"`
	Description string `json:"description,omitempty"`
}

// Step is one screen of the wizard.
type Step struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Config defines the wizard for one event type.
type Config struct {
	EventType       string `json:"eventType"`
	WelcomeMessage  string `json:"welcomeMessage"`
	VibePlaceholder string `json:"vibePlaceholder"`

	SpecialDanceFields  []Field `json:"specialDanceFields"`
	CeremonyMusicFields []Field `json:"ceremonyMusicFields"`

	Steps []Step `json:"steps"`

	HasCeremonyMusic       bool   `json:"hasCeremonyMusic"`
	SpecialMomentsLabel    string `json:"specialMomentsLabel"`
	SpecialMomentsQuestion string `json:"specialMomentsQuestion"`
}

// Step ids
const (
	StepWelcome           = "welcome"
	StepEventDetails      = "event_details"
	StepBigNo             = "big_no"
	StepSpecialDances     = "special_dances"
	StepSpecialDanceSongs = "special_dance_songs"
	StepMCIntroduction    = "mc_introduction"
	StepPlaylists         = "playlists"
	StepCeremonyType      = "ceremony_type"
	StepCeremonyFields    = "ceremony_fields"
	StepCeremonyDetails   = "ceremony_details"
	StepReview            = "review"
)

// Ceremony music types
const (
	CeremonyPreRecorded  = "pre_recorded"
	CeremonyLiveMusician = "live_musician"
	CeremonyBoth         = "both"
)

var eventTypeAliases = map[string]string{
	"wedding":         "wedding",
	"corporate":       "corporate",
	"corporate_event": "corporate",
	"school_dance":    "school_dance",
	"school":          "school_dance",
	"holiday_party":   "holiday_party",
	"holiday":         "holiday_party",
	"private_party":   "private_party",
	"private":         "private_party",
	"other":           "other",
}

// ConfigFor resolves a free-form event type to its wizard config.
// Unknown types get the generic config; an empty type means wedding.
func ConfigFor(eventType string) Config {
	normalized := strings.ToLower(strings.TrimSpace(eventType))
	if normalized == "" {
		normalized = "wedding"
	}
	standard, ok := eventTypeAliases[normalized]
	if !ok {
		standard = normalized
	}
	switch standard {
	case "wedding":
		return weddingConfig
	case "corporate":
		return corporateConfig
	case "school_dance":
		return schoolDanceConfig
	case "holiday_party":
		return holidayPartyConfig
	case "private_party":
		return privatePartyConfig
	default:
		return genericConfig
	}
}

var weddingConfig = Config{
	EventType:       "wedding",
	WelcomeMessage:  "We're so excited to be a part of your wedding day! Let's make sure your music is absolutely perfect.",
	VibePlaceholder: "Describe your wedding in 3 words (e.g., romantic, upbeat, classy)",
	SpecialDanceFields: []Field{
		{ID: "bridal_party_intro", Label: "Bridal Party Intro Song", Tooltip: "The high-energy song when your wedding party makes their grand entrance"},
		{ID: "bride_groom_intro", Label: "Bride and Groom Introduction Song", Tooltip: "YOUR big moment walking in as the new Mr & Mrs!"},
		{ID: "first_dance", Label: "Bride and Groom First Dance", Tooltip: "The romantic song just for the two of you"},
		{ID: "father_daughter", Label: "Father Daughter Dance", Tooltip: "That tear-jerker moment with Dad"},
		{ID: "mother_son", Label: "Mother Son Dance", Tooltip: "A sweet dedication to Mom"},
		{ID: "garter_toss", Label: "Garter Toss Song", Tooltip: "The fun, upbeat song for the garter toss tradition"},
		{ID: "bouquet_toss", Label: "Bouquet Toss Song", Tooltip: "The celebratory song when you toss the bouquet to your single friends"},
		{ID: "cake_cutting", Label: "Cake Cutting Song", Tooltip: "The sweet song that plays while you cut your wedding cake together"},
		{ID: "last_dance", Label: "Bride and Groom Last Dance of the night", Tooltip: "Your final dance together as the night comes to a close"},
	},
	CeremonyMusicFields: []Field{
		{ID: "prelude", Label: "Prelude", Description: "Soft background music while guests arrive and find their seats – think peaceful and welcoming"},
		{ID: "interlude", Label: "Interlude", Description: "A beautiful song during the lighting of the unity candle or another special moment in your ceremony. It can be instrumental or vocal."},
		{ID: "processional", Label: "Processional", Description: "Stately, elegant music played as your bridal party walks down the aisle, with you and your escort at the very end. Often the bride's walk is accompanied by a different, more emotional tune."},
		{ID: "bridal_march", Label: "Bridal March", Description: "The moment everyone's been waiting for – the music that plays as you walk down the aisle."},
		{ID: "recessional", Label: "Recessional", Description: "Upbeat, triumphant music played at the end of the service as you make your way back up the aisle as newlyweds!"},
		{ID: "postlude", Label: "Postlude", Description: "Background music that plays until every last guest has exited the ceremony area. It should be gentle and last around fifteen minutes."},
	},
	Steps: []Step{
		{ID: StepWelcome, Title: "Welcome to Your Music Planning", Description: "Let's make sure your wedding day music is absolutely perfect!"},
		{ID: StepEventDetails, Title: "Event Details", Description: "Help us understand your event basics"},
		{ID: StepBigNo, Title: "Songs We'll Happily Skip", Description: "We'll steer clear of these so your dance floor stays perfect"},
		{ID: StepSpecialDances, Title: "Special Dances", Description: "Are we having any special songs played for first dance, father daughter dance, etc?"},
		{ID: StepSpecialDanceSongs, Title: "Special Dance Songs", Description: "Please provide the song names and artists for your special dances"},
		{ID: StepPlaylists, Title: "Your Playlists", Description: "Have a playlist already started? We love it!"},
		{ID: StepMCIntroduction, Title: "MC Introduction", Description: "How would you like to be introduced?"},
		{ID: StepCeremonyType, Title: "Ceremony Music", Description: "What music will be played at the ceremony?"},
		{ID: StepCeremonyFields, Title: "Ceremony Music", Description: "Which ceremony music moments would you like to plan?"},
		{ID: StepCeremonyDetails, Title: "Ceremony Music Details", Description: "Please provide the song names for your ceremony"},
		{ID: StepReview, Title: "Review & Submit", Description: "Review your music selections before submitting"},
	},
	HasCeremonyMusic:       true,
	SpecialMomentsLabel:    "Special Dances",
	SpecialMomentsQuestion: "Are we having any special songs played for first dance, father daughter dance, etc?",
}

var corporateConfig = Config{
	EventType:       "corporate",
	WelcomeMessage:  "Let's create the perfect atmosphere for your corporate event. We'll ensure the music enhances your event's professional tone.",
	VibePlaceholder: "Describe your event atmosphere in 3 words (e.g., professional, upbeat, elegant)",
	SpecialDanceFields: []Field{
		{ID: "arrival_networking", Label: "Arrival & Networking Music", Tooltip: "Background music during guest arrival and networking time. Typically instrumental or light vocals, professional tone."},
		{ID: "presentation_ambient", Label: "Presentation Background Music", Tooltip: "Very subtle background music during presentations or speeches (if any). Usually instrumental only."},
		{ID: "awards_ceremony", Label: "Awards/Recognition Music", Tooltip: "Music played during awards presentations, employee recognition, or achievement ceremonies. Often includes walk-up music for recipients."},
		{ID: "dinner_music", Label: "Dinner Music", Tooltip: "Background music during dinner service. Should be pleasant but not distracting, allowing conversation."},
		{ID: "entertainment_dancing", Label: "Entertainment & Dancing Music", Tooltip: "Music for the entertainment portion if your event includes dancing or social time after formal portions."},
		{ID: "closing_exit", Label: "Closing & Exit Music", Tooltip: "Music as the event concludes and guests depart. Professional and positive."},
	},
	Steps: []Step{
		{ID: StepWelcome, Title: "Welcome to Your Event Planning", Description: "Let's plan the perfect music for your corporate event!"},
		{ID: StepEventDetails, Title: "Event Details", Description: "Help us understand your event basics"},
		{ID: StepBigNo, Title: "Songs to Avoid", Description: "Any songs or genres you'd like us to avoid?"},
		{ID: StepSpecialDances, Title: "Special Moments", Description: "Are there any special moments or presentations that need specific music?"},
		{ID: StepSpecialDanceSongs, Title: "Special Moment Music", Description: "Please provide the song names and artists for your special moments"},
		{ID: StepMCIntroduction, Title: "MC Services & Announcements", Description: "What announcements, introductions, or MC services do you need? (speaker introductions, agenda items, etc.)"},
		{ID: StepPlaylists, Title: "Your Playlists", Description: "Have any playlists or specific songs you'd like us to include?"},
		{ID: StepReview, Title: "Review & Submit", Description: "Review your music selections before submitting"},
	},
	SpecialMomentsLabel:    "Special Moments",
	SpecialMomentsQuestion: "Are there any special moments or presentations that need specific music?",
}

var schoolDanceConfig = Config{
	EventType:       "school_dance",
	WelcomeMessage:  "Let's make your school dance unforgettable! We'll play age-appropriate music that gets everyone on the dance floor.",
	VibePlaceholder: "Describe your dance atmosphere in 3 words (e.g., fun, energetic, school-appropriate)",
	SpecialDanceFields: []Field{
		{ID: "grand_entrance", Label: "Grand Entrance/Opening Music", Tooltip: "High-energy music for when students first enter the dance or for grand march/processional"},
		{ID: "court_presentation", Label: "Court Presentation Music", Tooltip: "Elegant music for homecoming/prom court introductions, king/queen announcements, or special recognition"},
		{ID: "slow_dances", Label: "Slow Dance Songs", Tooltip: "Appropriate slow dance songs students will enjoy. We'll ensure all selections are school-appropriate."},
		{ID: "line_dances", Label: "Line Dance/Group Dance Songs", Tooltip: "Popular line dances or group activities (Cha Cha Slide, Cupid Shuffle, etc.) that get everyone involved"},
		{ID: "crowd_favorites", Label: "Must-Play Favorites", Tooltip: "Popular songs that students have specifically requested or that are trending with your age group"},
		{ID: "last_song", Label: "Final Song of the Night", Tooltip: "The memorable closing song that ends the dance on a high note"},
	},
	Steps: []Step{
		{ID: StepWelcome, Title: "Welcome to Your Dance Planning", Description: "Let's plan amazing music for your school dance!"},
		{ID: StepEventDetails, Title: "Event Details", Description: "Help us understand your dance basics"},
		{ID: StepBigNo, Title: "Songs to Avoid", Description: "Any songs, artists, or genres that should be avoided? (We always play clean versions, but let us know if there are specific songs to skip)"},
		{ID: StepSpecialDances, Title: "Special Moments", Description: "Are there any special moments or traditions that need specific music?"},
		{ID: StepSpecialDanceSongs, Title: "Special Moment Music", Description: "Please provide the song names and artists for your special moments"},
		{ID: StepMCIntroduction, Title: "Announcements & MC Services", Description: "What announcements do you need? (court presentations, event timeline, rules/reminders, etc.)"},
		{ID: StepPlaylists, Title: "Your Playlists", Description: "Have playlists or songs that are popular with your students?"},
		{ID: StepReview, Title: "Review & Submit", Description: "Review your music selections before submitting"},
	},
	SpecialMomentsLabel:    "Special Moments",
	SpecialMomentsQuestion: "Are there any special moments or traditions that need specific music?",
}

var holidayPartyConfig = Config{
	EventType:       "holiday_party",
	WelcomeMessage:  "Let's create a festive atmosphere for your holiday celebration! We'll ensure the music matches the holiday spirit.",
	VibePlaceholder: "Describe your party atmosphere in 3 words (e.g., festive, joyful, elegant)",
	SpecialDanceFields: []Field{
		{ID: "arrival_music", Label: "Arrival & Welcome Music", Tooltip: "Festive holiday music as guests arrive and mingle"},
		{ID: "holiday_classics", Label: "Must-Play Holiday Classics", Tooltip: "Traditional holiday songs you definitely want to hear (White Christmas, Jingle Bells, etc.)"},
		{ID: "modern_holiday", Label: "Modern Holiday Songs", Tooltip: "Contemporary holiday music (recent pop holiday songs, covers, etc.)"},
		{ID: "dinner_cocktail", Label: "Dinner/Cocktail Music", Tooltip: "Background music during dinner or cocktail hour - can be all holiday or mix of holiday and regular"},
		{ID: "dancing_music", Label: "Dancing Music Mix", Tooltip: "Mix of holiday and regular dance music to keep the party going"},
		{ID: "special_moments", Label: "Special Moment Songs", Tooltip: "Music for gift exchanges, special announcements, or holiday traditions"},
		{ID: "closing_song", Label: "Closing Song", Tooltip: "Final festive song as the party concludes"},
	},
	Steps: []Step{
		{ID: StepWelcome, Title: "Welcome to Your Holiday Party Planning", Description: "Let's plan festive music for your holiday celebration!"},
		{ID: StepEventDetails, Title: "Event Details", Description: "Help us understand your party basics"},
		{ID: StepBigNo, Title: "Songs to Avoid", Description: "Any songs or genres you'd like us to avoid?"},
		{ID: StepSpecialDances, Title: "Special Moments", Description: "Are there any special moments that need specific music?"},
		{ID: StepSpecialDanceSongs, Title: "Special Moment Music", Description: "Please provide the song names and artists for your special moments"},
		{ID: StepMCIntroduction, Title: "Announcements", Description: "Any announcements or introductions needed?"},
		{ID: StepPlaylists, Title: "Your Playlists", Description: "Have holiday playlists, specific songs, or a mix preference? (All holiday, mix with regular music, etc.)"},
		{ID: StepReview, Title: "Review & Submit", Description: "Review your music selections before submitting"},
	},
	SpecialMomentsLabel:    "Special Moments & Activities",
	SpecialMomentsQuestion: "Any special holiday activities that need music? (gift exchanges, photo ops, special announcements, etc.)",
}

var privatePartyConfig = Config{
	EventType:       "private_party",
	WelcomeMessage:  "Let's make your private party amazing! We'll play the music that creates the perfect atmosphere for your celebration.",
	VibePlaceholder: "Describe your party atmosphere in 3 words (e.g., fun, relaxed, energetic)",
	SpecialDanceFields: []Field{
		{ID: "arrival_music", Label: "Arrival Music", Tooltip: "Music playing as guests arrive and get settled"},
		{ID: "guest_of_honor", Label: "Guest of Honor Song", Tooltip: "Special song for the birthday person, anniversary couple, or person being celebrated"},
		{ID: "cake_candles", Label: "Cake/Candle Moment", Tooltip: "Song for birthday candles, cake cutting, or similar celebration moment"},
		{ID: "toast_announcement", Label: "Toast/Announcement Music", Tooltip: "Background music during toasts or special announcements"},
		{ID: "era_preferences", Label: "Era or Genre Preferences", Tooltip: "Preferred music decades or genres (80s, 90s, current hits, country, etc.)"},
		{ID: "must_play_songs", Label: "Must-Play Songs", Tooltip: "Songs that absolutely must be played - crowd favorites or special requests"},
		{ID: "final_song", Label: "Final Song", Tooltip: "The memorable closing song to end the night"},
	},
	Steps: []Step{
		{ID: StepWelcome, Title: "Welcome to Your Party Planning", Description: "Let's plan amazing music for your private party!"},
		{ID: StepEventDetails, Title: "Event Details", Description: "Help us understand your party basics"},
		{ID: StepBigNo, Title: "Songs to Avoid", Description: "Any songs you'd like us to avoid?"},
		{ID: StepSpecialDances, Title: "Special Moments & Traditions", Description: "What special moments do you want music for? (birthday candles, anniversary toast, photo moments, etc.)"},
		{ID: StepSpecialDanceSongs, Title: "Special Moment Music", Description: "Please provide the song names and artists for your special moments"},
		{ID: StepMCIntroduction, Title: "Announcements & Introductions", Description: "Any announcements needed? (guest introductions, special moments, timeline items, etc.)"},
		{ID: StepPlaylists, Title: "Your Playlists", Description: "Have any playlists or songs you'd like us to include?"},
		{ID: StepReview, Title: "Review & Submit", Description: "Review your music selections before submitting"},
	},
	SpecialMomentsLabel:    "Special Moments & Traditions",
	SpecialMomentsQuestion: "What special moments do you want music for? (birthday candles, anniversary toast, photo moments, etc.)",
}

var genericConfig = Config{
	EventType:       "other",
	WelcomeMessage:  "Let's create the perfect music experience for your event! We'll tailor everything to match your vision.",
	VibePlaceholder: "Describe your event atmosphere in 3 words (e.g., fun, elegant, energetic)",
	SpecialDanceFields: []Field{
		{ID: "opening_music", Label: "Opening Music", Tooltip: "Music for the beginning of your event"},
		{ID: "background_music", Label: "Background Music", Tooltip: "Music during meal or social time"},
		{ID: "special_moment", Label: "Special Moment Song", Tooltip: "Music for a special moment in your event"},
		{ID: "entertainment_music", Label: "Entertainment Music", Tooltip: "Music for dancing or entertainment"},
		{ID: "closing_music", Label: "Closing Music", Tooltip: "Music as the event ends"},
	},
	Steps: []Step{
		{ID: StepWelcome, Title: "Welcome to Your Event Planning", Description: "Let's plan the perfect music for your event!"},
		{ID: StepEventDetails, Title: "Event Details", Description: "Help us understand your event basics"},
		{ID: StepBigNo, Title: "Songs to Avoid", Description: "Any songs or genres you'd like us to avoid?"},
		{ID: StepSpecialDances, Title: "Special Moments", Description: "Are there any special moments that need specific music?"},
		{ID: StepSpecialDanceSongs, Title: "Special Moment Music", Description: "Please provide the song names and artists for your special moments"},
		{ID: StepMCIntroduction, Title: "Announcements", Description: "Any announcements or introductions needed?"},
		{ID: StepPlaylists, Title: "Your Playlists", Description: "Have any playlists or songs you'd like us to include?"},
		{ID: StepReview, Title: "Review & Submit", Description: "Review your music selections before submitting"},
	},
	SpecialMomentsLabel:    "Special Moments",
	SpecialMomentsQuestion: "Are there any special moments that need specific music?",
}
