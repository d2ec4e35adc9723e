// Package catalog provides the fixed, read-only product catalog: lookups by
// id, slug, and category, per-product reviews, batch resolution for the
// wishlist page, and application of filter/sort selections to the listing.
package catalog

import (
	"github.com/velvetlane/storefront/pkg/types"
)

// Catalog is an immutable in-memory product catalog seeded at construction.
type Catalog struct {
	products []types.Product
	reviews  map[string][]types.Review
	byID     map[string]int
	bySlug   map[string]int
}

// New returns the catalog seeded with the built-in product list.
func New() *Catalog {
	c := &Catalog{
		products: seedProducts,
		reviews:  make(map[string][]types.Review, len(seedReviews)),
		byID:     make(map[string]int, len(seedProducts)),
		bySlug:   make(map[string]int, len(seedProducts)),
	}
	for i, p := range c.products {
		c.byID[p.ID] = i
		c.bySlug[p.Slug] = i
	}
	for _, r := range seedReviews {
		c.reviews[r.ProductID] = append(c.reviews[r.ProductID], r)
	}
	return c
}

// List returns every product in catalog order.
func (c *Catalog) List() []types.Product {
	products := make([]types.Product, len(c.products))
	copy(products, c.products)
	return products
}

// FindByID returns the product with the given ID.
// Returns ErrProductNotFound if no product has that ID.
func (c *Catalog) FindByID(id string) (types.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return types.Product{}, types.ErrProductNotFound
	}
	return c.products[i], nil
}

// FindBySlug returns the product with the given slug.
// Returns ErrProductNotFound if no product has that slug.
func (c *Catalog) FindBySlug(slug string) (types.Product, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return types.Product{}, types.ErrProductNotFound
	}
	return c.products[i], nil
}

// ListByCategory returns the products in the given category, in catalog
// order. Unknown categories yield an empty list, not an error.
func (c *Catalog) ListByCategory(category string) []types.Product {
	var products []types.Product
	for _, p := range c.products {
		if p.Category == category {
			products = append(products, p)
		}
	}
	return products
}

// Categories returns the distinct categories in catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// Reviews returns the reviews for a product. Unknown products yield an
// empty list.
func (c *Catalog) Reviews(productID string) []types.Review {
	return c.reviews[productID]
}

// Resolve returns the products matching the given wishlist IDs, in catalog
// order. A nil list is a caller contract violation and returns
// ErrInvalidIDList; unknown IDs are silently excluded, so an all-unknown
// list resolves to an empty result, not an error.
func (c *Catalog) Resolve(ids []string) ([]types.Product, error) {
	if ids == nil {
		return nil, types.ErrInvalidIDList
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	matches := []types.Product{}
	for _, p := range c.products {
		if wanted[p.ID] {
			matches = append(matches, p)
		}
	}
	return matches, nil
}
