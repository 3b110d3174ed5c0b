package pricing

import (
	"math"
	"testing"

	"djquote-backend/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateBundledScalesProportionally(t *testing.T) {
	items := []catalog.BreakdownItem{
		{Item: "DJ Services", Price: 1500},
		{Item: "Lighting", Price: 500},
	}
	// items sum to 2000, bundled price is 1800
	out := AllocateBundled(items, 1800)
	require.Len(t, out, 2)
	assert.Equal(t, 1350.0, out[0].BundledPrice)
	assert.Equal(t, 450.0, out[1].BundledPrice)
	// original prices preserved alongside
	assert.Equal(t, 1500.0, out[0].Price)
}

func TestAllocateBundledUnscaledWhenSumsMatch(t *testing.T) {
	items := []catalog.BreakdownItem{
		{Item: "DJ Services", Price: 1500},
		{Item: "Lighting", Price: 500},
	}
	out := AllocateBundled(items, 2000)
	require.Len(t, out, 2)
	assert.Equal(t, 1500.0, out[0].BundledPrice)
	assert.Equal(t, 500.0, out[1].BundledPrice)
}

func TestAllocateBundledUnscaledWhenItemsUnpriced(t *testing.T) {
	items := []catalog.BreakdownItem{
		{Item: "DJ Services"},
		{Item: "Lighting"},
	}
	out := AllocateBundled(items, 2000)
	require.Len(t, out, 2)
	assert.Equal(t, 0.0, out[0].BundledPrice)
	assert.Equal(t, 0.0, out[1].BundledPrice)
}

func TestAllocateBundledRoundingDrift(t *testing.T) {
	// Three equal items against a price that doesn't divide evenly;
	// each share rounds independently so the sum may drift from the
	// package price by at most half a cent per line.
	items := []catalog.BreakdownItem{
		{Item: "A", Price: 100},
		{Item: "B", Price: 100},
		{Item: "C", Price: 100},
	}
	out := AllocateBundled(items, 100)
	require.Len(t, out, 3)

	var sum float64
	for _, it := range out {
		assert.Equal(t, Round2(it.BundledPrice), it.BundledPrice)
		sum += it.BundledPrice
	}
	assert.LessOrEqual(t, math.Abs(sum-100), float64(len(items))*0.005)
}

func TestAllocateBundledEmpty(t *testing.T) {
	assert.Empty(t, AllocateBundled(nil, 1000))
}
