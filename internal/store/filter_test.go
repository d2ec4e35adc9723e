package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velvetlane/storefront/pkg/types"
)

func TestFilterSetters(t *testing.T) {
	f := NewFilter()

	f.SetSelectedCategories([]string{"tops", "shoes"})
	f.SetPriceRange(25, 150)
	f.SetSelectedSizes([]string{"M"})
	f.SetSelectedColors([]string{"Black"})
	f.SetSortBy(types.SortPriceAsc)
	f.SetSearchQuery("hoodie")
	f.SetView(types.ViewList)

	state := f.State()
	assert.Equal(t, []string{"tops", "shoes"}, state.SelectedCategories)
	assert.Equal(t, [2]float64{25, 150}, state.PriceRange)
	assert.Equal(t, []string{"M"}, state.SelectedSizes)
	assert.Equal(t, []string{"Black"}, state.SelectedColors)
	assert.Equal(t, types.SortPriceAsc, state.SortBy)
	assert.Equal(t, "hoodie", state.SearchQuery)
	assert.Equal(t, types.ViewList, state.View)
}

func TestFilterClearResetsToDefaults(t *testing.T) {
	f := NewFilter()
	f.SetSelectedCategories([]string{"tops"})
	f.SetPriceRange(25, 150)
	f.SetSortBy(types.SortRating)
	f.SetSearchQuery("tee")
	f.SetView(types.ViewList)

	f.Clear()

	state := f.State()
	assert.Empty(t, state.SelectedCategories)
	assert.Equal(t, [2]float64{types.DefaultPriceMin, types.DefaultPriceMax}, state.PriceRange)
	assert.Equal(t, types.SortFeatured, state.SortBy)
	assert.Empty(t, state.SearchQuery)
	assert.Equal(t, types.ViewList, state.View, "view mode survives a filter reset")
}
