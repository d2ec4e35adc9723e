package checkout

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetlane/storefront/internal/snapshot"
	"github.com/velvetlane/storefront/internal/store"
	"github.com/velvetlane/storefront/pkg/types"
)

var productA = types.Product{
	ID: "p1", Slug: "classic-tee", Name: "Classic Tee", Price: 29.99,
	Images: []string{"/img/tee.jpg"}, Category: "tops",
	Sizes: []string{"S", "M", "L"}, InStock: true,
}

func newTestCart(t *testing.T) *store.Cart {
	t.Helper()
	s := snapshot.NewFileStore()
	require.NoError(t, s.Open(types.Config{Backend: types.BackendFile, DataDir: t.TempDir()}))
	t.Cleanup(func() { _ = s.Close() })

	cart, err := store.NewCart(s)
	require.NoError(t, err)
	return cart
}

func validShipping() types.ShippingInfo {
	return types.ShippingInfo{
		Email:        "a@b.com",
		FullName:     "Jane Doe",
		Phone:        "5551234567",
		AddressLine1: "123 Main St",
		City:         "NYC",
		State:        "NY",
		ZipCode:      "10001",
		Country:      "United States",
	}
}

func validCard() types.PaymentInfo {
	return types.PaymentInfo{
		Method:     types.MethodCard,
		CardNumber: "4111 1111 1111 1111",
		CardHolder: "Jane Doe",
		ExpiryDate: "12/27",
		CVV:        "123",
	}
}

func TestWizardStartsAtShipping(t *testing.T) {
	w := NewWizard(newTestCart(t), 0)
	assert.Equal(t, types.StepShipping, w.Step())
	assert.Equal(t, types.MethodCard, w.Payment().Method)
}

func TestWizardShippingGating(t *testing.T) {
	cart := newTestCart(t)
	require.NoError(t, cart.AddItem(productA, "M", "Black", 1))
	w := NewWizard(cart, 0)

	t.Run("invalid email blocks", func(t *testing.T) {
		info := validShipping()
		info.Email = "not-an-email"
		err := w.SubmitShipping(info)

		var fieldErrs types.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Contains(t, fieldErrs, "email")
		assert.Equal(t, types.StepShipping, w.Step(), "state must not advance")
	})

	t.Run("all errors collected", func(t *testing.T) {
		err := w.SubmitShipping(types.ShippingInfo{})

		var fieldErrs types.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		for _, field := range []string{"email", "fullName", "phone", "addressLine1", "city", "state", "zipCode"} {
			assert.Contains(t, fieldErrs, field)
		}
	})

	t.Run("valid fields advance", func(t *testing.T) {
		require.NoError(t, w.SubmitShipping(validShipping()))
		assert.Equal(t, types.StepPayment, w.Step())
	})
}

func TestWizardPaymentGating(t *testing.T) {
	cart := newTestCart(t)
	require.NoError(t, cart.AddItem(productA, "M", "Black", 1))
	w := NewWizard(cart, 0)
	require.NoError(t, w.SubmitShipping(validShipping()))

	t.Run("short card number blocks", func(t *testing.T) {
		info := validCard()
		info.CardNumber = "4111 1111 1111" // 12 digits
		err := w.SubmitPayment(info)

		var fieldErrs types.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Contains(t, fieldErrs, "cardNumber")
		assert.Equal(t, types.StepPayment, w.Step())
	})

	t.Run("paypal passes without card fields", func(t *testing.T) {
		require.NoError(t, w.SubmitPayment(types.PaymentInfo{Method: types.MethodPaypal}))
		assert.Equal(t, types.StepReview, w.Step())
	})
}

func TestWizardBackwardTransitions(t *testing.T) {
	cart := newTestCart(t)
	require.NoError(t, cart.AddItem(productA, "M", "Black", 1))
	w := NewWizard(cart, 0)
	require.NoError(t, w.SubmitShipping(validShipping()))
	require.NoError(t, w.SubmitPayment(validCard()))
	require.Equal(t, types.StepReview, w.Step())

	// Review -> Payment, always permitted.
	require.NoError(t, w.GoTo(types.StepPayment))
	assert.Equal(t, types.StepPayment, w.Step())

	// Payment -> Shipping, always permitted; never re-validates.
	require.NoError(t, w.GoTo(types.StepShipping))
	assert.Equal(t, types.StepShipping, w.Step())

	// Forward jumps are refused.
	assert.ErrorIs(t, w.GoTo(types.StepReview), types.ErrInvalidTransition)
	assert.ErrorIs(t, w.GoTo(types.StepShipping), types.ErrInvalidTransition)
}

func TestWizardReviewToShipping(t *testing.T) {
	cart := newTestCart(t)
	require.NoError(t, cart.AddItem(productA, "M", "Black", 1))
	w := NewWizard(cart, 0)
	require.NoError(t, w.SubmitShipping(validShipping()))
	require.NoError(t, w.SubmitPayment(validCard()))

	require.NoError(t, w.GoTo(types.StepShipping))
	assert.Equal(t, types.StepShipping, w.Step())
}

func TestWizardEmptyCartGuard(t *testing.T) {
	w := NewWizard(newTestCart(t), 0)
	assert.ErrorIs(t, w.SubmitShipping(validShipping()), types.ErrEmptyCart)
	assert.Equal(t, types.StepShipping, w.Step())
}

func TestWizardPlaceOrder(t *testing.T) {
	t.Run("terms refusal", func(t *testing.T) {
		cart := newTestCart(t)
		require.NoError(t, cart.AddItem(productA, "M", "Black", 1))
		w := NewWizard(cart, 0)
		require.NoError(t, w.SubmitShipping(validShipping()))
		require.NoError(t, w.SubmitPayment(validCard()))

		_, err := w.PlaceOrder()
		assert.ErrorIs(t, err, types.ErrTermsNotAccepted)
		assert.Equal(t, types.StepReview, w.Step(), "refusal leaves state unchanged")
		assert.Equal(t, 1, cart.ItemCount(), "cart untouched on refusal")
	})

	t.Run("success clears cart once", func(t *testing.T) {
		cart := newTestCart(t)
		require.NoError(t, cart.AddItem(productA, "M", "Black", 1))
		w := NewWizard(cart, 0)
		require.NoError(t, w.SubmitShipping(validShipping()))
		require.NoError(t, w.SubmitPayment(validCard()))
		w.SetTerms(true)

		orderID, err := w.PlaceOrder()
		require.NoError(t, err)
		assert.NotEmpty(t, orderID)
		assert.Equal(t, types.StepCompleted, w.Step())
		assert.Empty(t, cart.Items())
		assert.Zero(t, cart.ItemCount())
	})

	t.Run("completed wizard refuses further motion", func(t *testing.T) {
		cart := newTestCart(t)
		require.NoError(t, cart.AddItem(productA, "M", "Black", 1))
		w := NewWizard(cart, 0)
		require.NoError(t, w.SubmitShipping(validShipping()))
		require.NoError(t, w.SubmitPayment(validCard()))
		w.SetTerms(true)
		_, err := w.PlaceOrder()
		require.NoError(t, err)

		assert.ErrorIs(t, w.GoTo(types.StepShipping), types.ErrInvalidTransition)
		_, err = w.PlaceOrder()
		assert.ErrorIs(t, err, types.ErrInvalidTransition)
	})
}

func TestWizardPlaceOrderReentry(t *testing.T) {
	cart := newTestCart(t)
	require.NoError(t, cart.AddItem(productA, "M", "Black", 1))
	w := NewWizard(cart, 50*time.Millisecond)
	require.NoError(t, w.SubmitShipping(validShipping()))
	require.NoError(t, w.SubmitPayment(validCard()))
	w.SetTerms(true)

	var wg sync.WaitGroup
	errCh := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := w.PlaceOrder()
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	var failures []error
	for err := range errCh {
		if err != nil {
			failures = append(failures, err)
		}
	}
	require.Len(t, failures, 1, "exactly one placement succeeds")
	assert.ErrorIs(t, failures[0], types.ErrOrderInProgress)
	assert.Empty(t, cart.Items())
}

func TestWizardTotals(t *testing.T) {
	cart := newTestCart(t)
	require.NoError(t, cart.AddItem(productA, "M", "Black", 2))
	w := NewWizard(cart, 0)

	totals := w.Totals()
	subtotal := 2 * productA.Price
	assert.InDelta(t, subtotal, totals.Subtotal, 1e-9)
	assert.InDelta(t, FlatShippingRate, totals.Shipping, 1e-9)
	assert.InDelta(t, subtotal*TaxRate, totals.Tax, 1e-9)
	assert.InDelta(t, subtotal+FlatShippingRate+subtotal*TaxRate, totals.Total, 1e-9)
}

func TestComputeTotalsShippingThreshold(t *testing.T) {
	t.Run("exactly 100 pays flat rate", func(t *testing.T) {
		totals := ComputeTotals(100.00)
		assert.InDelta(t, 10.0, totals.Shipping, 1e-9, "rule is strictly greater than 100")
	})

	t.Run("100.01 ships free", func(t *testing.T) {
		totals := ComputeTotals(100.01)
		assert.Zero(t, totals.Shipping)
	})

	t.Run("empty cart", func(t *testing.T) {
		totals := ComputeTotals(0)
		assert.InDelta(t, 10.0, totals.Shipping, 1e-9)
		assert.InDelta(t, 10.0, totals.Total, 1e-9)
	})
}

func TestEndToEndOrderFlow(t *testing.T) {
	cart := newTestCart(t)

	require.NoError(t, cart.AddItem(productA, "M", "Black", 1))
	assert.Equal(t, 1, cart.ItemCount())
	assert.InDelta(t, productA.Price, cart.Total(), 1e-9)

	// Same identity merges rather than duplicating.
	require.NoError(t, cart.AddItem(productA, "M", "Black", 2))
	assert.Equal(t, 3, cart.ItemCount())
	require.Len(t, cart.Items(), 1)

	w := NewWizard(cart, 0)
	require.NoError(t, w.SubmitShipping(validShipping()))
	require.NoError(t, w.SubmitPayment(validCard()))
	w.SetTerms(true)

	orderID, err := w.PlaceOrder()
	require.NoError(t, err)
	assert.NotEmpty(t, orderID)
	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.ItemCount())
}
