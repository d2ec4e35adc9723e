// Wishlist commands manage the persisted wishlist of product IDs.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/velvetlane/storefront/internal/catalog"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Manage the wishlist",
}

var wishlistAddCmd = &cobra.Command{
	Use:   "add <slug>",
	Short: "Add a product to the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishlistAdd,
}

var wishlistRemoveCmd = &cobra.Command{
	Use:   "remove <slug>",
	Short: "Remove a product from the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishlistRemove,
}

var wishlistToggleCmd = &cobra.Command{
	Use:   "toggle <slug>",
	Short: "Toggle a product's wishlist membership",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishlistToggle,
}

var wishlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the wishlist with resolved products",
	Args:  cobra.NoArgs,
	RunE:  runWishlistList,
}

func init() {
	wishlistCmd.AddCommand(wishlistAddCmd)
	wishlistCmd.AddCommand(wishlistRemoveCmd)
	wishlistCmd.AddCommand(wishlistToggleCmd)
	wishlistCmd.AddCommand(wishlistListCmd)
}

func runWishlistAdd(cmd *cobra.Command, args []string) error {
	product, err := catalog.New().FindBySlug(args[0])
	if err != nil {
		return fmt.Errorf("product %q: %w", args[0], err)
	}

	wishlist, closeStore, err := openWishlist()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := wishlist.AddItem(product.ID); err != nil {
		return fmt.Errorf("add to wishlist: %w", err)
	}

	fmt.Printf("Added %s to wishlist\n", product.Name)
	return nil
}

func runWishlistRemove(cmd *cobra.Command, args []string) error {
	product, err := catalog.New().FindBySlug(args[0])
	if err != nil {
		return fmt.Errorf("product %q: %w", args[0], err)
	}

	wishlist, closeStore, err := openWishlist()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := wishlist.RemoveItem(product.ID); err != nil {
		return fmt.Errorf("remove from wishlist: %w", err)
	}

	fmt.Printf("Removed %s from wishlist\n", product.Name)
	return nil
}

func runWishlistToggle(cmd *cobra.Command, args []string) error {
	product, err := catalog.New().FindBySlug(args[0])
	if err != nil {
		return fmt.Errorf("product %q: %w", args[0], err)
	}

	wishlist, closeStore, err := openWishlist()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := wishlist.ToggleItem(product.ID); err != nil {
		return fmt.Errorf("toggle wishlist: %w", err)
	}

	if wishlist.IsInWishlist(product.ID) {
		fmt.Printf("Added %s to wishlist\n", product.Name)
	} else {
		fmt.Printf("Removed %s from wishlist\n", product.Name)
	}
	return nil
}

func runWishlistList(cmd *cobra.Command, args []string) error {
	wishlist, closeStore, err := openWishlist()
	if err != nil {
		return err
	}
	defer closeStore()

	// Stale IDs (products gone from the catalog) are dropped on resolution.
	products, err := catalog.New().Resolve(wishlist.IDs())
	if err != nil {
		return fmt.Errorf("resolve wishlist: %w", err)
	}

	if flagJSON {
		return printJSON(products)
	}

	if len(products) == 0 {
		fmt.Println("Wishlist is empty.")
		return nil
	}
	for _, p := range products {
		fmt.Printf("%-24s %-28s $%7.2f\n", p.Slug, p.Name, p.Price)
	}
	return nil
}
