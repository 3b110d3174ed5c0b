package pricing

import (
	"strings"
	"time"

	"djquote-backend/catalog"
)

// Classification holds the event-type flags the quote and questionnaire
// pages branch on. Flags are independent except privateParty, which only
// applies when no more specific holiday or school match fired.
type Classification struct {
	IsWedding      bool `json:"isWedding"`
	IsCorporate    bool `json:"isCorporate"`
	IsSchool       bool `json:"isSchool"`
	IsHoliday      bool `json:"isHoliday"`
	IsPrivateParty bool `json:"isPrivateParty"`
}

var (
	weddingKeywords   = []string{"wedding"}
	holidayKeywords   = []string{"holiday", "christmas", "xmas", "new year", "nye", "hanukkah"}
	schoolKeywords    = []string{"school", "prom", "homecoming", "graduation"}
	corporateKeywords = []string{"corporate", "company", "office", "gala", "conference", "banquet"}
	partyKeywords     = []string{"party", "birthday", "anniversary", "quinceanera", "sweet 16", "private"}
)

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Classify inspects a free-form event type string. Holiday and school
// keywords are checked before the generic party keywords, so a
// "Christmas Party" is a holiday event, not a private party.
func Classify(eventType string) Classification {
	text := strings.ToLower(strings.TrimSpace(eventType))
	c := Classification{
		IsWedding:   matchesAny(text, weddingKeywords),
		IsCorporate: matchesAny(text, corporateKeywords),
		IsSchool:    matchesAny(text, schoolKeywords),
		IsHoliday:   matchesAny(text, holidayKeywords),
	}
	if !c.IsHoliday && !c.IsSchool && matchesAny(text, partyKeywords) {
		c.IsPrivateParty = true
	}
	return c
}

// Category maps a free-form event type onto a catalog category.
func Category(eventType string) string {
	c := Classify(eventType)
	switch {
	case c.IsWedding:
		return catalog.CategoryWedding
	case c.IsHoliday:
		return catalog.CategoryHoliday
	case c.IsSchool:
		return catalog.CategorySchool
	case c.IsCorporate:
		return catalog.CategoryCorporate
	default:
		return catalog.CategoryPrivateParty
	}
}

// HolidayTheme is a seasonal color scheme applied to the quote page.
type HolidayTheme struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// GenericHoliday is used for holiday events whose date matches no
// specific season (or has no date at all).
var GenericHoliday = HolidayTheme{Key: "holiday", Name: "Holiday", Primary: "#1a472a", Secondary: "#b8860b", Accent: "#f5f5dc"}

type themeWindow struct {
	startMonth time.Month
	startDay   int
	endMonth   time.Month
	endDay     int
	theme      HolidayTheme
}

// Windows may cross the year boundary (New Year).
var themeWindows = []themeWindow{
	{time.October, 1, time.October, 31, HolidayTheme{Key: "halloween", Name: "Halloween", Primary: "#1a1a2e", Secondary: "#ff6b00", Accent: "#7b2cbf"}},
	{time.November, 1, time.November, 30, HolidayTheme{Key: "thanksgiving", Name: "Thanksgiving", Primary: "#5c3317", Secondary: "#d2691e", Accent: "#ffb347"}},
	{time.December, 1, time.December, 26, HolidayTheme{Key: "christmas", Name: "Christmas", Primary: "#0f5132", Secondary: "#b91c1c", Accent: "#fbbf24"}},
	{time.December, 27, time.January, 7, HolidayTheme{Key: "new_year", Name: "New Year", Primary: "#111827", Secondary: "#d4af37", Accent: "#e5e7eb"}},
	{time.February, 7, time.February, 15, HolidayTheme{Key: "valentines", Name: "Valentine's Day", Primary: "#881337", Secondary: "#fb7185", Accent: "#fdf2f8"}},
	{time.March, 10, time.March, 18, HolidayTheme{Key: "st_patricks", Name: "St. Patrick's Day", Primary: "#14532d", Secondary: "#22c55e", Accent: "#fef9c3"}},
	{time.June, 28, time.July, 5, HolidayTheme{Key: "july_4th", Name: "July 4th", Primary: "#1e3a8a", Secondary: "#dc2626", Accent: "#f8fafc"}},
}

func inWindow(t time.Time, w themeWindow) bool {
	md := int(t.Month())*100 + t.Day()
	start := int(w.startMonth)*100 + w.startDay
	end := int(w.endMonth)*100 + w.endDay
	if start <= end {
		return md >= start && md <= end
	}
	// wraps the year boundary
	return md >= start || md <= end
}

// ThemeForDate returns the seasonal theme for a date, or nil when the
// date falls outside every themed window.
func ThemeForDate(t time.Time) *HolidayTheme {
	for _, w := range themeWindows {
		if inWindow(t, w) {
			theme := w.theme
			return &theme
		}
	}
	return nil
}

// ThemeForEvent picks the theme shown on a lead's quote page. Holiday
// events always get a theme, falling back to the generic one; other
// events are themed only when their date lands in a themed window.
func ThemeForEvent(eventType string, eventDate *time.Time) *HolidayTheme {
	var dated *HolidayTheme
	if eventDate != nil {
		dated = ThemeForDate(*eventDate)
	}
	if dated != nil {
		return dated
	}
	if Classify(eventType).IsHoliday {
		theme := GenericHoliday
		return &theme
	}
	return nil
}
