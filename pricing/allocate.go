package pricing

import "djquote-backend/catalog"

// AllocatedItem is a breakdown line with its share of the bundled price.
type AllocatedItem struct {
	Item         string  `json:"item"`
	Price        float64 `json:"price"`
	BundledPrice float64 `json:"bundledPrice"`
}

// AllocateBundled distributes a bundled package price across its
// breakdown items in proportion to their individual prices. Each share
// is rounded to cents independently, so the shares may drift from the
// package price by a fraction of a cent per line. When the items already
// sum to the package price, or the items carry no prices at all, the
// individual prices are used unchanged.
func AllocateBundled(items []catalog.BreakdownItem, packagePrice float64) []AllocatedItem {
	var sum float64
	for _, it := range items {
		sum += it.Price
	}

	out := make([]AllocatedItem, 0, len(items))
	if sum == 0 || sum == packagePrice {
		for _, it := range items {
			out = append(out, AllocatedItem{Item: it.Item, Price: it.Price, BundledPrice: it.Price})
		}
		return out
	}

	ratio := packagePrice / sum
	for _, it := range items {
		out = append(out, AllocatedItem{
			Item:         it.Item,
			Price:        it.Price,
			BundledPrice: Round2(it.Price * ratio),
		})
	}
	return out
}
