package catalog

import (
	"sort"
	"strings"

	"github.com/velvetlane/storefront/pkg/types"
)

// Apply filters and sorts the catalog according to the given selections.
// Filters narrow in order: category, price range, size, color, search, then
// the new/sale convenience filters. The sort is stable so catalog order
// breaks ties.
func (c *Catalog) Apply(state types.FilterState) []types.Product {
	filtered := c.List()

	if len(state.SelectedCategories) > 0 {
		filtered = keep(filtered, func(p types.Product) bool {
			return containsString(state.SelectedCategories, p.Category)
		})
	}

	filtered = keep(filtered, func(p types.Product) bool {
		return p.Price >= state.PriceRange[0] && p.Price <= state.PriceRange[1]
	})

	if len(state.SelectedSizes) > 0 {
		filtered = keep(filtered, func(p types.Product) bool {
			for _, size := range p.Sizes {
				if containsString(state.SelectedSizes, size) {
					return true
				}
			}
			return false
		})
	}

	if len(state.SelectedColors) > 0 {
		filtered = keep(filtered, func(p types.Product) bool {
			for _, color := range p.Colors {
				if containsString(state.SelectedColors, color.Name) {
					return true
				}
			}
			return false
		})
	}

	if state.SearchQuery != "" {
		query := strings.ToLower(state.SearchQuery)
		filtered = keep(filtered, func(p types.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), query) ||
				strings.Contains(strings.ToLower(p.Description), query)
		})
	}

	if state.OnlyNew {
		filtered = keep(filtered, func(p types.Product) bool { return p.New })
	}
	if state.OnlySale {
		filtered = keep(filtered, func(p types.Product) bool { return p.OnSale() })
	}

	switch state.SortBy {
	case types.SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case types.SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case types.SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].New && !filtered[j].New })
	case types.SortRating:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	default:
		// Featured.
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Featured && !filtered[j].Featured })
	}

	return filtered
}

// keep returns the products satisfying the predicate, preserving order.
func keep(products []types.Product, pred func(types.Product) bool) []types.Product {
	out := products[:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// containsString reports membership of s in list.
func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
