package types

// Step identifies a checkout wizard stage. The wizard always starts at
// StepShipping; StepCompleted is terminal and reachable only through a
// successful order placement.
type Step int

// Checkout wizard steps.
const (
	StepShipping  Step = 1
	StepPayment   Step = 2
	StepReview    Step = 3
	StepCompleted Step = 4
)

// String returns the display name of the step.
func (s Step) String() string {
	switch s {
	case StepShipping:
		return "Shipping"
	case StepPayment:
		return "Payment"
	case StepReview:
		return "Review"
	case StepCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Payment method names.
const (
	MethodCard   = "card"
	MethodPaypal = "paypal"
	MethodApple  = "apple"
)

// ShippingInfo is the shipping form draft held by the checkout wizard.
type ShippingInfo struct {
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
}

// PaymentInfo is the payment form draft. Card fields are required and
// validated only when Method is MethodCard; paypal and apple represent
// externally-redirected flows and carry no card data.
type PaymentInfo struct {
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber,omitempty"`
	CardHolder string `json:"cardHolder,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CVV        string `json:"cvv,omitempty"`
}

// Totals is the derived order pricing, recomputed from the cart on every
// query and never cached in the checkout session.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}
