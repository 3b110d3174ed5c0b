// Package catalog holds the static package/add-on catalogs shown on the
// quote page, one set per event category, plus the merge path for remote
// pricing-config overrides.
package catalog

type Package struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         float64         `json:"price"`
	ALaCartePrice float64         `json:"aLaCartePrice"`
	Description   string          `json:"description"`
	Features      []string        `json:"features"`
	Popular       bool            `json:"popular"`
	Breakdown     []BreakdownItem `json:"breakdown,omitempty"`
}

type BreakdownItem struct {
	Item  string  `json:"item"`
	Price float64 `json:"price"`
}

type Addon struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Per         string  `json:"per,omitempty"`
}

// Event categories
const (
	CategoryWedding      = "wedding"
	CategoryCorporate    = "corporate"
	CategorySchool       = "school"
	CategoryHoliday      = "holiday"
	CategoryPrivateParty = "private_party"
)

var weddingPackages = []Package{
	{
		ID:            "package1",
		Name:          "Package 1",
		Price:         2000,
		ALaCartePrice: 2400,
		Description:   "Reception Only",
		Features: []string{
			"Up to 4 hours of DJ/MC services at reception",
			"Speakers & microphones included",
			"Dance Floor Lighting",
			"Multi-color LED fixtures for dance floor",
			"Uplighting (16 multicolor LED fixtures)",
			"Additional Speaker",
			"Perfect for cocktail hours separate from reception",
		},
		Breakdown: []BreakdownItem{
			{Item: "4 Hours DJ/MC Services", Price: 1500},
			{Item: "Dance Floor Lighting", Price: 350},
			{Item: "Uplighting (16 fixtures)", Price: 300},
			{Item: "Additional Speaker", Price: 250},
		},
	},
	{
		ID:            "package2",
		Name:          "Package 2",
		Price:         2500,
		ALaCartePrice: 3000,
		Description:   "Reception Only - Most Popular",
		Popular:       true,
		Features: []string{
			"Up to 4 hours of DJ/MC services at reception",
			"Speakers & microphones included",
			"Dance Floor Lighting",
			"Multi-color LED fixtures for dance floor",
			"Uplighting (16 multicolor LED fixtures)",
			"Ceremony Audio (additional hour + ceremony music)",
			"Monogram Projection",
			"Custom graphic with your names or initials",
		},
		Breakdown: []BreakdownItem{
			{Item: "4 Hours DJ/MC Services", Price: 1500},
			{Item: "Dance Floor Lighting", Price: 350},
			{Item: "Uplighting (16 fixtures)", Price: 300},
			{Item: "Ceremony Audio", Price: 500},
			{Item: "Monogram Projection", Price: 350},
		},
	},
	{
		ID:            "package3",
		Name:          "Package 3",
		Price:         3000,
		ALaCartePrice: 3500,
		Description:   "Ceremony & Reception - Premium Experience",
		Features: []string{
			"Up to 4 hours of DJ/MC services at reception",
			"Speakers & microphones included",
			"Ceremony Audio (additional hour + ceremony music)",
			"Dance Floor Lighting",
			"Multi-color LED fixtures for dance floor",
			"Uplighting (16 multicolor LED fixtures)",
			"Dancing on the Clouds",
			"Sophisticated dry ice effect for first dance",
			"Monogram Projection",
			"Custom graphic with your names or initials",
		},
		Breakdown: []BreakdownItem{
			{Item: "4 Hours DJ/MC Services", Price: 1500},
			{Item: "Dance Floor Lighting", Price: 350},
			{Item: "Uplighting (16 fixtures)", Price: 300},
			{Item: "Ceremony Audio", Price: 500},
			{Item: "Monogram Projection", Price: 350},
			{Item: "Dancing on the Clouds", Price: 500},
		},
	},
}

var weddingAddons = []Addon{
	{ID: "extra-hours", Name: "Extra Hours", Description: "Additional DJ/MC services beyond the 4-hour package", Price: 300, Per: "hour"},
	{ID: "photo-booth", Name: "Photo Booth", Description: "Professional photo booth with props and instant prints", Price: 800},
	{ID: "karaoke", Name: "Karaoke Setup", Description: "Full karaoke system with microphones and song library", Price: 400},
	{ID: "smoke-machine", Name: "Smoke Machine", Description: "Atmospheric smoke effects for special moments", Price: 200},
	{ID: "uplighting", Name: "Uplighting", Description: "16 multicolor LED fixtures around the room", Price: 300},
	{ID: "ceremony_sound", Name: "Ceremony Audio", Description: "Dedicated ceremony sound system and ceremony music", Price: 500},
	{ID: "wireless_mics", Name: "Wireless Microphones", Description: "Extra wireless microphones for toasts and officiants", Price: 150},
	{ID: "cocktail_hour", Name: "Cocktail Hour Coverage", Description: "Separate speaker and playlist for cocktail hour", Price: 250},
}

// Non-wedding events share a smaller three-tier catalog
var eventPackages = []Package{
	{
		ID:            "essential",
		Name:          "Essential",
		Price:         500,
		ALaCartePrice: 650,
		Description:   "Music and MC for events up to 3 hours",
		Features: []string{
			"Up to 3 hours of DJ/MC services",
			"Speakers & microphones included",
			"Custom playlist from your requests",
		},
		Breakdown: []BreakdownItem{
			{Item: "3 Hours DJ/MC Services", Price: 450},
			{Item: "Sound System", Price: 200},
		},
	},
	{
		ID:            "standard",
		Name:          "Standard",
		Price:         900,
		ALaCartePrice: 1100,
		Description:   "Full event coverage with dance floor lighting",
		Popular:       true,
		Features: []string{
			"Up to 4 hours of DJ/MC services",
			"Speakers & microphones included",
			"Dance Floor Lighting",
			"Custom playlist from your requests",
		},
		Breakdown: []BreakdownItem{
			{Item: "4 Hours DJ/MC Services", Price: 600},
			{Item: "Sound System", Price: 200},
			{Item: "Dance Floor Lighting", Price: 300},
		},
	},
	{
		ID:            "premium",
		Name:          "Premium",
		Price:         1300,
		ALaCartePrice: 1600,
		Description:   "Extended coverage with uplighting and premium sound",
		Features: []string{
			"Up to 6 hours of DJ/MC services",
			"Premium sound system",
			"Dance Floor Lighting",
			"Uplighting (16 multicolor LED fixtures)",
			"Wireless microphones",
		},
		Breakdown: []BreakdownItem{
			{Item: "6 Hours DJ/MC Services", Price: 900},
			{Item: "Premium Sound System", Price: 250},
			{Item: "Dance Floor Lighting", Price: 300},
			{Item: "Uplighting (16 fixtures)", Price: 150},
		},
	},
}

var eventAddons = []Addon{
	{ID: "extra-hours", Name: "Extra Hours", Description: "Additional DJ/MC services beyond the package", Price: 150, Per: "hour"},
	{ID: "photo-booth", Name: "Photo Booth", Description: "Professional photo booth with props and instant prints", Price: 800},
	{ID: "karaoke", Name: "Karaoke Setup", Description: "Full karaoke system with microphones and song library", Price: 400},
	{ID: "uplighting", Name: "Uplighting", Description: "16 multicolor LED fixtures around the room", Price: 300},
	{ID: "wireless_mics", Name: "Wireless Microphones", Description: "Extra wireless microphones for speeches and announcements", Price: 150},
}

// Packages returns the package catalog for an event category.
func Packages(category string) []Package {
	if category == CategoryWedding {
		return clonePackages(weddingPackages)
	}
	return clonePackages(eventPackages)
}

// Addons returns the add-on catalog for an event category.
func Addons(category string) []Addon {
	if category == CategoryWedding {
		return append([]Addon(nil), weddingAddons...)
	}
	return append([]Addon(nil), eventAddons...)
}

// FindPackage looks a package up by id within a category catalog.
func FindPackage(category, id string) (Package, bool) {
	for _, p := range Packages(category) {
		if p.ID == id {
			return p, true
		}
	}
	return Package{}, false
}

// FindAddon looks an add-on up by id within a category catalog.
func FindAddon(category, id string) (Addon, bool) {
	for _, a := range Addons(category) {
		if a.ID == id {
			return a, true
		}
	}
	return Addon{}, false
}

func clonePackages(src []Package) []Package {
	out := make([]Package, len(src))
	copy(out, src)
	for i := range out {
		out[i].Features = append([]string(nil), src[i].Features...)
		out[i].Breakdown = append([]BreakdownItem(nil), src[i].Breakdown...)
	}
	return out
}
