package checkout

import "strings"

// Cosmetic card-input normalization. These helpers mirror the storefront's
// input formatting and are not validation: the wizard gates only on the
// rules in validate.go.

// FormatCardNumber groups card digits into blocks of four separated by
// single spaces, capped at 16 digits. Inputs with fewer than four digits
// are returned unchanged.
func FormatCardNumber(value string) string {
	digits := digitsOf(value)
	if len(digits) < 4 {
		return value
	}
	if len(digits) > 16 {
		digits = digits[:16]
	}

	var parts []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		parts = append(parts, digits[i:end])
	}
	return strings.Join(parts, " ")
}

// FormatExpiry auto-splits expiry input into MM/YY once two or more digits
// are present.
func FormatExpiry(value string) string {
	digits := digitsOf(value)
	if len(digits) < 2 {
		return digits
	}
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits[:2] + "/" + digits[2:]
}

// CheckLuhn reports whether the card number passes the Luhn checksum.
// Non-gating: used for advisory warnings only.
func CheckLuhn(cardNumber string) bool {
	digits := digitsOf(cardNumber)
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// CardType returns the card network inferred from the number prefix.
func CardType(cardNumber string) string {
	digits := digitsOf(cardNumber)
	switch {
	case strings.HasPrefix(digits, "4"):
		return "Visa"
	case len(digits) >= 2 && digits[0] == '5' && digits[1] >= '1' && digits[1] <= '5':
		return "Mastercard"
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return "American Express"
	case strings.HasPrefix(digits, "6011"), strings.HasPrefix(digits, "65"):
		return "Discover"
	default:
		return "Unknown"
	}
}

// digitsOf strips everything but ASCII digits from s.
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
