// Package pricing implements the quote math: subtotals, discounts,
// bundled-price allocation, due dates, payment schedules and event
// classification. Everything here is pure so the controllers stay thin.
package pricing

import (
	"math"
	"strings"

	"djquote-backend/catalog"
)

const (
	DiscountPercentage = "percentage"
	DiscountFlat       = "flat"
)

// Round2 rounds to cents, away from zero on ties.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Subtotal is the package price plus all selected add-ons.
func Subtotal(packagePrice float64, addonPrices []float64) float64 {
	total := packagePrice
	for _, p := range addonPrices {
		total += p
	}
	return total
}

// DiscountAmount computes the displayed discount. Flat discounts are
// returned as-is even when they exceed the subtotal; Total clamps.
func DiscountAmount(subtotal float64, discountType string, value float64) float64 {
	switch discountType {
	case DiscountPercentage:
		return subtotal * value / 100
	case DiscountFlat:
		return value
	default:
		return 0
	}
}

// Total applies a discount to a subtotal, never going below zero.
func Total(subtotal, discountAmount float64) float64 {
	total := subtotal - discountAmount
	if total < 0 {
		return 0
	}
	return total
}

// QuoteTotal is the full pipeline for one quote selection.
func QuoteTotal(packagePrice float64, addonPrices []float64, discountType string, discountValue float64) float64 {
	subtotal := Subtotal(packagePrice, addonPrices)
	return Total(subtotal, DiscountAmount(subtotal, discountType, discountValue))
}

// ALaCarteTotal sums the individual prices of a package's line items,
// the "what you'd pay without bundling" figure.
func ALaCarteTotal(items []catalog.BreakdownItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price
	}
	return total
}

// packageKeywords maps package ids to the add-on phrases that package
// already covers. Used to suggest an upgrade instead of stacking add-ons.
var packageKeywords = map[string][]string{
	"package2": {"ceremony", "monogram"},
	"package3": {"ceremony", "monogram", "cloud", "dry ice", "smoke"},
	"standard": {"dance floor", "lighting"},
	"premium":  {"lighting", "uplighting", "wireless", "microphone"},
}

// BestPackageMatch suggests the package whose included features cover the
// most of the selected add-ons. Returns nil when nothing matches.
func BestPackageMatch(selected []catalog.Addon, packages []catalog.Package) *catalog.Package {
	best := -1
	bestScore := 0
	for i, pkg := range packages {
		keywords := packageKeywords[pkg.ID]
		if len(keywords) == 0 {
			continue
		}
		score := 0
		for _, addon := range selected {
			text := strings.ToLower(addon.Name + " " + addon.Description)
			for _, kw := range keywords {
				if strings.Contains(text, kw) {
					score++
					break
				}
			}
		}
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	pkg := packages[best]
	return &pkg
}

// CustomizeBreakdown recomputes a package's prices after the given line
// items are removed. Always derived from the base catalog entry, so
// re-applying the same removals is a no-op.
func CustomizeBreakdown(pkg catalog.Package, removed []string) (price, aLaCarte float64, kept []catalog.BreakdownItem) {
	removedSet := make(map[string]bool, len(removed))
	for _, name := range removed {
		removedSet[strings.ToLower(strings.TrimSpace(name))] = true
	}

	price = pkg.Price
	aLaCarte = pkg.ALaCartePrice
	for _, item := range pkg.Breakdown {
		if removedSet[strings.ToLower(item.Item)] {
			price -= item.Price
			aLaCarte -= item.Price
			continue
		}
		kept = append(kept, item)
	}
	if price < 0 {
		price = 0
	}
	if aLaCarte < 0 {
		aLaCarte = 0
	}
	return price, aLaCarte, kept
}
