package store

import (
	"sync"

	"github.com/velvetlane/storefront/pkg/types"
)

// Filter owns the current catalog filter, sort, and view selections. It is
// a read-side store with no business invariants beyond value containment;
// the catalog applies the selections, not this store. State is session-only
// and never persisted.
type Filter struct {
	mu    sync.RWMutex
	state types.FilterState
}

// NewFilter creates a filter store with the documented defaults.
func NewFilter() *Filter {
	return &Filter{state: types.DefaultFilterState()}
}

// State returns a copy of the current selections.
func (f *Filter) State() types.FilterState {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// Set replaces every selection at once.
func (f *Filter) Set(state types.FilterState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = state
}

// SetSelectedCategories replaces the category selection.
func (f *Filter) SetSelectedCategories(categories []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.SelectedCategories = categories
}

// SetPriceRange replaces the price range.
func (f *Filter) SetPriceRange(min, max float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.PriceRange = [2]float64{min, max}
}

// SetSelectedSizes replaces the size selection.
func (f *Filter) SetSelectedSizes(sizes []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.SelectedSizes = sizes
}

// SetSelectedColors replaces the color-name selection.
func (f *Filter) SetSelectedColors(colors []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.SelectedColors = colors
}

// SetSortBy replaces the sort key.
func (f *Filter) SetSortBy(sortBy string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.SortBy = sortBy
}

// SetSearchQuery replaces the free-text search query.
func (f *Filter) SetSearchQuery(query string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.SearchQuery = query
}

// SetView replaces the list/grid view mode.
func (f *Filter) SetView(view string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.View = view
}

// SetOnlyNew toggles the new-arrivals convenience filter.
func (f *Filter) SetOnlyNew(onlyNew bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.OnlyNew = onlyNew
}

// SetOnlySale toggles the on-sale convenience filter.
func (f *Filter) SetOnlySale(onlySale bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.OnlySale = onlySale
}

// Clear resets the content filters to their defaults. The view mode is a
// presentation preference and survives the reset.
func (f *Filter) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	view := f.state.View
	f.state = types.DefaultFilterState()
	f.state.View = view
}
