// Cart commands mutate the persisted shopping cart.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/velvetlane/storefront/internal/catalog"
)

var (
	cartSize     string
	cartColor    string
	cartQuantity int
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the shopping cart",
}

var cartAddCmd = &cobra.Command{
	Use:   "add <slug>",
	Short: "Add a product to the cart",
	Long: `Add puts a product variant in the cart. Adding the same variant again
merges into the existing line.

Example:
  storefront cart add essential-crewneck-tee --size M --color Black
  storefront cart add heavyweight-zip-hoodie --size L --color Oat --quantity 2`,
	Args: cobra.ExactArgs(1),
	RunE: runCartAdd,
}

var cartListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the cart contents and total",
	Args:  cobra.NoArgs,
	RunE:  runCartList,
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update <product-id>",
	Short: "Set the quantity of a cart line",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartUpdate,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a cart line",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRemove,
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Args:  cobra.NoArgs,
	RunE:  runCartClear,
}

func init() {
	cartAddCmd.Flags().StringVar(&cartSize, "size", "", "variant size (required)")
	cartAddCmd.Flags().StringVar(&cartColor, "color", "", "variant color (required)")
	cartAddCmd.Flags().IntVar(&cartQuantity, "quantity", 1, "quantity to add")
	_ = cartAddCmd.MarkFlagRequired("size")
	_ = cartAddCmd.MarkFlagRequired("color")

	cartUpdateCmd.Flags().StringVar(&cartSize, "size", "", "variant size (required)")
	cartUpdateCmd.Flags().StringVar(&cartColor, "color", "", "variant color (required)")
	cartUpdateCmd.Flags().IntVar(&cartQuantity, "quantity", 1, "new quantity; 0 removes the line")
	_ = cartUpdateCmd.MarkFlagRequired("size")
	_ = cartUpdateCmd.MarkFlagRequired("color")

	cartRemoveCmd.Flags().StringVar(&cartSize, "size", "", "variant size (required)")
	cartRemoveCmd.Flags().StringVar(&cartColor, "color", "", "variant color (required)")
	_ = cartRemoveCmd.MarkFlagRequired("size")
	_ = cartRemoveCmd.MarkFlagRequired("color")

	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartListCmd)
	cartCmd.AddCommand(cartUpdateCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartClearCmd)
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	product, err := catalog.New().FindBySlug(args[0])
	if err != nil {
		return fmt.Errorf("product %q: %w", args[0], err)
	}

	cart, closeStore, err := openCart()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := cart.AddItem(product, cartSize, cartColor, cartQuantity); err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}

	fmt.Printf("Added %s (%s/%s) x%d\n", product.Name, cartSize, cartColor, cartQuantity)
	return nil
}

func runCartList(cmd *cobra.Command, args []string) error {
	cart, closeStore, err := openCart()
	if err != nil {
		return err
	}
	defer closeStore()

	items := cart.Items()
	if flagJSON {
		return printJSON(map[string]any{
			"items":     items,
			"itemCount": cart.ItemCount(),
			"total":     cart.Total(),
		})
	}

	if len(items) == 0 {
		fmt.Println("Cart is empty.")
		return nil
	}
	for _, item := range items {
		fmt.Printf("%-24s %s/%s x%d  $%.2f\n",
			item.Product.Slug, item.SelectedSize, item.SelectedColor, item.Quantity, item.Subtotal())
	}
	fmt.Printf("Total: $%.2f (%d items)\n", cart.Total(), cart.ItemCount())
	return nil
}

func runCartUpdate(cmd *cobra.Command, args []string) error {
	cart, closeStore, err := openCart()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := cart.UpdateQuantity(args[0], cartSize, cartColor, cartQuantity); err != nil {
		return fmt.Errorf("update cart: %w", err)
	}

	fmt.Printf("Updated %s (%s/%s) to x%d\n", args[0], cartSize, cartColor, cartQuantity)
	return nil
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	cart, closeStore, err := openCart()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := cart.RemoveItem(args[0], cartSize, cartColor); err != nil {
		return fmt.Errorf("remove from cart: %w", err)
	}

	fmt.Printf("Removed %s (%s/%s)\n", args[0], cartSize, cartColor)
	return nil
}

func runCartClear(cmd *cobra.Command, args []string) error {
	cart, closeStore, err := openCart()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := cart.Clear(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	fmt.Println("Cart cleared.")
	return nil
}
