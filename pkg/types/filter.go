package types

// Sort keys for the product listing.
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNewest    = "newest"
	SortRating    = "rating"
)

// View modes for the product listing.
const (
	ViewGrid = "grid"
	ViewList = "list"
)

// Default price range bounds.
const (
	DefaultPriceMin = 0
	DefaultPriceMax = 1000
)

// FilterState describes the desired catalog view. It is purely descriptive;
// filtering and sorting are applied by the catalog, not by the filter store.
type FilterState struct {
	SelectedCategories []string   `json:"selectedCategories"`
	PriceRange         [2]float64 `json:"priceRange"` // [min, max], min <= max
	SelectedSizes      []string   `json:"selectedSizes"`
	SelectedColors     []string   `json:"selectedColors"`
	SortBy             string     `json:"sortBy"`
	SearchQuery        string     `json:"searchQuery"`
	View               string     `json:"view"`
	OnlyNew            bool       `json:"onlyNew,omitempty"`
	OnlySale           bool       `json:"onlySale,omitempty"`
}

// DefaultFilterState returns the documented filter defaults: no selections,
// price range [0, 1000], featured sort, empty search, grid view.
func DefaultFilterState() FilterState {
	return FilterState{
		SelectedCategories: []string{},
		PriceRange:         [2]float64{DefaultPriceMin, DefaultPriceMax},
		SelectedSizes:      []string{},
		SelectedColors:     []string{},
		SortBy:             SortFeatured,
		SearchQuery:        "",
		View:               ViewGrid,
	}
}
