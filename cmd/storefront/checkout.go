// Checkout command walks the three-step wizard against the persisted cart.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/velvetlane/storefront/internal/checkout"
	"github.com/velvetlane/storefront/pkg/types"
)

var (
	checkoutEmail    string
	checkoutName     string
	checkoutPhone    string
	checkoutAddress  string
	checkoutAddress2 string
	checkoutCity     string
	checkoutState    string
	checkoutZip      string
	checkoutCountry  string

	checkoutMethod     string
	checkoutCardNumber string
	checkoutCardHolder string
	checkoutExpiry     string
	checkoutCVV        string

	checkoutTerms bool
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order for the current cart",
	Long: `Checkout runs the shipping, payment, and review steps in one pass.
Validation failures are printed per field and nothing is placed.

Example:
  storefront checkout --email a@b.com --name "Ada Lovelace" --phone 5551234567 \
    --address "123 Main Street" --city Portland --state OR --zip 97201 \
    --card-number "4111 1111 1111 1111" --card-holder "Ada Lovelace" \
    --expiry 12/27 --cvv 123 --accept-terms`,
	Args: cobra.NoArgs,
	RunE: runCheckout,
}

func init() {
	checkoutCmd.Flags().StringVar(&checkoutEmail, "email", "", "contact email")
	checkoutCmd.Flags().StringVar(&checkoutName, "name", "", "full name")
	checkoutCmd.Flags().StringVar(&checkoutPhone, "phone", "", "phone number")
	checkoutCmd.Flags().StringVar(&checkoutAddress, "address", "", "address line 1")
	checkoutCmd.Flags().StringVar(&checkoutAddress2, "address2", "", "address line 2")
	checkoutCmd.Flags().StringVar(&checkoutCity, "city", "", "city")
	checkoutCmd.Flags().StringVar(&checkoutState, "state", "", "state")
	checkoutCmd.Flags().StringVar(&checkoutZip, "zip", "", "zip code")
	checkoutCmd.Flags().StringVar(&checkoutCountry, "country", "United States", "country")

	checkoutCmd.Flags().StringVar(&checkoutMethod, "method", types.MethodCard, "payment method: card, paypal, apple")
	checkoutCmd.Flags().StringVar(&checkoutCardNumber, "card-number", "", "card number")
	checkoutCmd.Flags().StringVar(&checkoutCardHolder, "card-holder", "", "cardholder name")
	checkoutCmd.Flags().StringVar(&checkoutExpiry, "expiry", "", "expiry date MM/YY")
	checkoutCmd.Flags().StringVar(&checkoutCVV, "cvv", "", "card security code")

	checkoutCmd.Flags().BoolVar(&checkoutTerms, "accept-terms", false, "accept the terms and conditions")
}

func runCheckout(cmd *cobra.Command, args []string) error {
	cart, closeStore, err := openCart()
	if err != nil {
		return err
	}
	defer closeStore()

	wizard := checkout.NewWizard(cart, checkout.DefaultProcessingDelay)

	shipping := types.ShippingInfo{
		Email:        checkoutEmail,
		FullName:     checkoutName,
		Phone:        checkoutPhone,
		AddressLine1: checkoutAddress,
		AddressLine2: checkoutAddress2,
		City:         checkoutCity,
		State:        checkoutState,
		ZipCode:      checkoutZip,
		Country:      checkoutCountry,
	}
	if err := wizard.SubmitShipping(shipping); err != nil {
		return reportCheckoutError("shipping", err)
	}

	payment := types.PaymentInfo{
		Method:     checkoutMethod,
		CardNumber: checkout.FormatCardNumber(checkoutCardNumber),
		CardHolder: checkoutCardHolder,
		ExpiryDate: checkout.FormatExpiry(checkoutExpiry),
		CVV:        checkoutCVV,
	}
	if payment.Method == types.MethodCard && payment.CardNumber != "" {
		// Advisory only; a number that fails the check digit is still accepted.
		if !checkout.CheckLuhn(payment.CardNumber) {
			fmt.Fprintln(os.Stderr, "warning: card number fails the Luhn check")
		}
		if kind := checkout.CardType(payment.CardNumber); kind != "Unknown" {
			fmt.Println("Card type:", kind)
		}
	}
	if err := wizard.SubmitPayment(payment); err != nil {
		return reportCheckoutError("payment", err)
	}

	wizard.SetTerms(checkoutTerms)

	totals := wizard.Totals()
	fmt.Printf("Subtotal: $%.2f\n", totals.Subtotal)
	fmt.Printf("Shipping: $%.2f\n", totals.Shipping)
	fmt.Printf("Tax:      $%.2f\n", totals.Tax)
	fmt.Printf("Total:    $%.2f\n", totals.Total)

	fmt.Println("Placing order...")
	orderID, err := wizard.PlaceOrder()
	if err != nil {
		return reportCheckoutError("review", err)
	}

	fmt.Println("Order placed:", orderID)
	return nil
}

// reportCheckoutError prints field errors one per line; other errors pass
// through to cobra.
func reportCheckoutError(step string, err error) error {
	var fields types.FieldErrors
	if errors.As(err, &fields) {
		fmt.Fprintf(os.Stderr, "%s step rejected:\n", step)
		for field, msg := range fields {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
		}
		os.Exit(exitUserError)
	}
	return fmt.Errorf("%s step: %w", step, err)
}
