package checkout

import (
	"strings"
	"unicode"

	"github.com/velvetlane/storefront/pkg/types"
)

// ValidateShipping checks every shipping field and returns the full set of
// failures. Evaluation never short-circuits; all errors are collected so the
// caller can surface them inline at once. A nil result means valid.
func ValidateShipping(info types.ShippingInfo) types.FieldErrors {
	errs := types.FieldErrors{}

	if !strings.Contains(info.Email, "@") {
		errs["email"] = "Valid email required"
	}
	if len(info.FullName) < 2 {
		errs["fullName"] = "Full name required"
	}
	if len(info.Phone) < 10 {
		errs["phone"] = "Valid phone required"
	}
	if len(info.AddressLine1) < 5 {
		errs["addressLine1"] = "Address required"
	}
	if len(info.City) < 2 {
		errs["city"] = "City required"
	}
	if len(info.State) < 2 {
		errs["state"] = "State required"
	}
	if len(info.ZipCode) < 5 {
		errs["zipCode"] = "Zip code required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidatePayment checks card fields when the method is card. The paypal
// and apple methods represent externally-redirected flows and always pass.
func ValidatePayment(info types.PaymentInfo) types.FieldErrors {
	if info.Method != types.MethodCard {
		return nil
	}

	errs := types.FieldErrors{}

	cleaned := stripSpaces(info.CardNumber)
	if len(cleaned) < 15 || !allDigits(cleaned) {
		errs["cardNumber"] = "Valid card number required"
	}
	if len(info.CardHolder) < 3 {
		errs["cardHolder"] = "Cardholder name required"
	}
	if len(info.ExpiryDate) < 5 {
		errs["expiryDate"] = "Expiry date required"
	}
	if len(info.CVV) < 3 {
		errs["cvv"] = "CVV required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// stripSpaces removes all whitespace from s.
func stripSpaces(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// allDigits reports whether s is non-empty and contains only ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
