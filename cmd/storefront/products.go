// Products commands browse the built-in catalog with filter and sort flags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/velvetlane/storefront/internal/catalog"
	"github.com/velvetlane/storefront/internal/store"
)

var (
	productCategories []string
	productSizes      []string
	productColors     []string
	productMinPrice   float64
	productMaxPrice   float64
	productSort       string
	productSearch     string
	productOnlyNew    bool
	productOnlySale   bool
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List catalog products",
	Long: `Products lists the catalog, narrowed by filter flags and ordered by --sort.

Example:
  storefront products --category tops --sale --sort price-asc
  storefront products --search merino --json
  storefront products show suede-chukka-boot`,
	Args: cobra.NoArgs,
	RunE: runProductsList,
}

var productsShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show one product with its reviews",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsShow,
}

func init() {
	productsCmd.Flags().StringSliceVar(&productCategories, "category", nil, "filter by category (repeatable)")
	productsCmd.Flags().StringSliceVar(&productSizes, "size", nil, "filter by size (repeatable)")
	productsCmd.Flags().StringSliceVar(&productColors, "color", nil, "filter by color name (repeatable)")
	productsCmd.Flags().Float64Var(&productMinPrice, "min-price", 0, "minimum price")
	productsCmd.Flags().Float64Var(&productMaxPrice, "max-price", 1000, "maximum price")
	productsCmd.Flags().StringVar(&productSort, "sort", "featured", "sort order: featured, price-asc, price-desc, newest, rating")
	productsCmd.Flags().StringVar(&productSearch, "search", "", "search name and description")
	productsCmd.Flags().BoolVar(&productOnlyNew, "new", false, "only new arrivals")
	productsCmd.Flags().BoolVar(&productOnlySale, "sale", false, "only products on sale")

	productsCmd.AddCommand(productsShowCmd)
}

func runProductsList(cmd *cobra.Command, args []string) error {
	// The filter store holds the view selections; the catalog applies them.
	filter := store.NewFilter()
	filter.SetSelectedCategories(productCategories)
	filter.SetSelectedSizes(productSizes)
	filter.SetSelectedColors(productColors)
	filter.SetPriceRange(productMinPrice, productMaxPrice)
	filter.SetSortBy(productSort)
	filter.SetSearchQuery(productSearch)
	filter.SetOnlyNew(productOnlyNew)
	filter.SetOnlySale(productOnlySale)

	products := catalog.New().Apply(filter.State())

	if flagJSON {
		return printJSON(products)
	}

	if len(products) == 0 {
		fmt.Println("No products match.")
		return nil
	}
	for _, p := range products {
		line := fmt.Sprintf("%-24s %-28s $%7.2f", p.Slug, p.Name, p.Price)
		if p.OnSale() {
			line += fmt.Sprintf("  (was $%.2f)", p.CompareAtPrice)
		}
		if !p.InStock {
			line += "  [out of stock]"
		}
		fmt.Println(line)
	}
	return nil
}

func runProductsShow(cmd *cobra.Command, args []string) error {
	c := catalog.New()
	product, err := c.FindBySlug(args[0])
	if err != nil {
		return fmt.Errorf("product %q: %w", args[0], err)
	}

	if flagJSON {
		return printJSON(product)
	}

	fmt.Printf("%s ($%.2f)\n", product.Name, product.Price)
	fmt.Println(product.FullDescription)
	fmt.Println("  category:", product.Category)
	fmt.Println("  sizes:   ", product.Sizes)
	fmt.Printf("  rating:   %.1f (%d reviews)\n", product.Rating, product.ReviewCount)
	for _, r := range c.Reviews(product.ID) {
		fmt.Printf("  - %s (%v/5): %s\n", r.Author, r.Rating, r.Comment)
	}
	return nil
}
