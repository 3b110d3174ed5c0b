package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeddingCatalogContents(t *testing.T) {
	packages := Packages(CategoryWedding)
	require.Len(t, packages, 3)

	assert.Equal(t, "package1", packages[0].ID)
	assert.Equal(t, 2000.0, packages[0].Price)
	assert.Equal(t, 2400.0, packages[0].ALaCartePrice)

	assert.Equal(t, "package2", packages[1].ID)
	assert.True(t, packages[1].Popular)
	assert.Equal(t, 2500.0, packages[1].Price)

	assert.Equal(t, "package3", packages[2].ID)
	assert.Equal(t, 3000.0, packages[2].Price)
	assert.Equal(t, 3500.0, packages[2].ALaCartePrice)
}

func TestEventCatalogSharedByNonWeddingCategories(t *testing.T) {
	corporate := Packages(CategoryCorporate)
	school := Packages(CategorySchool)
	require.Len(t, corporate, 3)
	assert.Equal(t, corporate[0].ID, school[0].ID)
	assert.Equal(t, "essential", corporate[0].ID)
	assert.True(t, corporate[1].Popular)
}

func TestFindPackage(t *testing.T) {
	pkg, ok := FindPackage(CategoryWedding, "package2")
	require.True(t, ok)
	assert.Equal(t, "Package 2", pkg.Name)

	_, ok = FindPackage(CategoryWedding, "essential")
	assert.False(t, ok)
}

func TestFindAddon(t *testing.T) {
	addon, ok := FindAddon(CategoryWedding, "photo-booth")
	require.True(t, ok)
	assert.Equal(t, 800.0, addon.Price)

	_, ok = FindAddon(CategoryCorporate, "smoke-machine")
	assert.False(t, ok)
}

func TestPackagesReturnsIndependentCopies(t *testing.T) {
	first := Packages(CategoryWedding)
	first[0].Price = 1
	first[0].Breakdown[0].Price = 1

	second := Packages(CategoryWedding)
	assert.Equal(t, 2000.0, second[0].Price)
	assert.Equal(t, 1500.0, second[0].Breakdown[0].Price)
}

func TestBreakdownsSumToALaCartePriceOrLess(t *testing.T) {
	for _, category := range []string{CategoryWedding, CategoryCorporate} {
		for _, pkg := range Packages(category) {
			var sum float64
			for _, item := range pkg.Breakdown {
				sum += item.Price
			}
			assert.LessOrEqual(t, sum, pkg.ALaCartePrice, "%s/%s", category, pkg.ID)
			assert.Greater(t, pkg.ALaCartePrice, pkg.Price, "%s/%s", category, pkg.ID)
		}
	}
}
