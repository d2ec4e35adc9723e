// Package checkout implements the three-step checkout wizard as a guarded
// state machine over the cart store. Forward transitions are gated by
// synchronous field validation; backward transitions are always permitted
// and never re-validate. The terminal transition clears the cart exactly
// once and yields a generated order identifier.
package checkout

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/velvetlane/storefront/internal/store"
	"github.com/velvetlane/storefront/pkg/types"
)

// DefaultProcessingDelay simulates the order-processing latency of the
// terminal transition. The exact value carries no correctness weight.
const DefaultProcessingDelay = 2500 * time.Millisecond

// Pricing constants.
const (
	FreeShippingThreshold = 100.0 // shipping is free strictly above this subtotal
	FlatShippingRate      = 10.0
	TaxRate               = 0.08
)

// Wizard orchestrates the checkout flow. A wizard always starts at the
// shipping step; session state is transient and not persisted across
// restarts. The wizard reads the cart for totals and mutates it only on
// the terminal transition.
type Wizard struct {
	mu            sync.Mutex
	cart          *store.Cart
	step          types.Step
	shipping      types.ShippingInfo
	payment       types.PaymentInfo
	acceptedTerms bool
	processing    bool
	delay         time.Duration
}

// NewWizard creates a wizard at the shipping step. The delay is the
// simulated processing pause of PlaceOrder; tests pass zero.
func NewWizard(cart *store.Cart, delay time.Duration) *Wizard {
	return &Wizard{
		cart:     cart,
		step:     types.StepShipping,
		shipping: types.ShippingInfo{Country: "United States"},
		payment:  types.PaymentInfo{Method: types.MethodCard},
		delay:    delay,
	}
}

// Step returns the current wizard step.
func (w *Wizard) Step() types.Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Shipping returns the current shipping draft.
func (w *Wizard) Shipping() types.ShippingInfo {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.shipping
}

// Payment returns the current payment draft.
func (w *Wizard) Payment() types.PaymentInfo {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.payment
}

// TermsAccepted reports the terms-acceptance flag.
func (w *Wizard) TermsAccepted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.acceptedTerms
}

// Processing reports whether an order placement is in flight.
func (w *Wizard) Processing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.processing
}

// SubmitShipping stores the shipping draft and attempts the transition to
// the payment step. On validation failure the draft is kept, the step is
// unchanged, and the full set of field errors is returned.
func (w *Wizard) SubmitShipping(info types.ShippingInfo) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != types.StepShipping {
		return types.ErrInvalidTransition
	}
	if w.cart.ItemCount() == 0 {
		return types.ErrEmptyCart
	}

	w.shipping = info
	if errs := ValidateShipping(info); len(errs) > 0 {
		return errs
	}

	w.step = types.StepPayment
	return nil
}

// SubmitPayment stores the payment draft and attempts the transition to the
// review step. Card details are validated only for the card method; paypal
// and apple pass unconditionally.
func (w *Wizard) SubmitPayment(info types.PaymentInfo) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != types.StepPayment {
		return types.ErrInvalidTransition
	}
	if w.cart.ItemCount() == 0 {
		return types.ErrEmptyCart
	}

	w.payment = info
	if errs := ValidatePayment(info); len(errs) > 0 {
		return errs
	}

	w.step = types.StepReview
	return nil
}

// GoTo moves the wizard backward to an earlier step. Backward motion is
// never guarded and never re-validates. Forward or same-step jumps, and any
// motion after completion, fail with ErrInvalidTransition.
func (w *Wizard) GoTo(step types.Step) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step == types.StepCompleted {
		return types.ErrInvalidTransition
	}
	if step < types.StepShipping || step >= w.step {
		return types.ErrInvalidTransition
	}
	w.step = step
	return nil
}

// SetTerms records the terms-acceptance flag shown on the review step.
func (w *Wizard) SetTerms(accepted bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.acceptedTerms = accepted
}

// PlaceOrder runs the terminal transition: it refuses when terms are not
// accepted, the cart is empty, or a placement is already in flight; it then
// waits the processing delay, clears the cart exactly once, and returns the
// generated order identifier.
func (w *Wizard) PlaceOrder() (string, error) {
	w.mu.Lock()
	if w.step != types.StepReview {
		w.mu.Unlock()
		return "", types.ErrInvalidTransition
	}
	if w.processing {
		w.mu.Unlock()
		return "", types.ErrOrderInProgress
	}
	if !w.acceptedTerms {
		w.mu.Unlock()
		return "", types.ErrTermsNotAccepted
	}
	if w.cart.ItemCount() == 0 {
		w.mu.Unlock()
		return "", types.ErrEmptyCart
	}
	w.processing = true
	w.mu.Unlock()

	// Simulated network latency. Not cancellable; the caller is expected to
	// block further submissions while Processing reports true.
	time.Sleep(w.delay)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.cart.Clear(); err != nil {
		w.processing = false
		return "", err
	}
	w.step = types.StepCompleted
	w.processing = false
	return newOrderID(), nil
}

// Totals recomputes the derived pricing from the current cart contents.
func (w *Wizard) Totals() types.Totals {
	return ComputeTotals(w.cart.Total())
}

// ComputeTotals derives shipping, tax, and grand total from a subtotal.
// Shipping is free strictly above the threshold, so a subtotal of exactly
// 100.00 still pays the flat rate.
func ComputeTotals(subtotal float64) types.Totals {
	shipping := FlatShippingRate
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * TaxRate
	return types.Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// newOrderID generates a UUID v7 order identifier.
func newOrderID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
