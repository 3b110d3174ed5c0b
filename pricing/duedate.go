package pricing

import "time"

// Due-date policies selectable per quote for the deposit and balance.
const (
	PolicyUponReceipt    = "upon_receipt"
	PolicyDayOfEvent     = "day_of_event"
	PolicySevenDaysPrior = "7_days_before"
	PolicyCustom         = "custom"
)

// ValidPolicy reports whether s is a recognized due-date policy.
func ValidPolicy(s string) bool {
	switch s {
	case PolicyUponReceipt, PolicyDayOfEvent, PolicySevenDaysPrior, PolicyCustom:
		return true
	}
	return false
}

// DueDate resolves a policy to a concrete date. Policies that need an
// event date fall back to seven days after the invoice date when the
// event date is unknown; an unset custom date falls back the same way.
func DueDate(policy string, invoiceDate time.Time, eventDate, customDate *time.Time) time.Time {
	fallback := invoiceDate.AddDate(0, 0, 7)
	switch policy {
	case PolicyUponReceipt:
		return invoiceDate
	case PolicyDayOfEvent:
		if eventDate == nil {
			return fallback
		}
		return *eventDate
	case PolicySevenDaysPrior:
		if eventDate == nil {
			return fallback
		}
		return eventDate.AddDate(0, 0, -7)
	case PolicyCustom:
		if customDate == nil {
			return fallback
		}
		return *customDate
	default:
		return fallback
	}
}
