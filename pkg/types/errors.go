package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Snapshot store lifecycle errors.
var (
	ErrStoreClosed  = errors.New("snapshot store is closed")
	ErrAlreadyOpen  = errors.New("snapshot store is already open")
	ErrSlotNotFound = errors.New("snapshot slot not found")
)

// Catalog lookup errors.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidIDList   = errors.New("id list must not be nil")
)

// Checkout wizard errors.
var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid step transition")
	ErrTermsNotAccepted  = errors.New("terms and conditions not accepted")
	ErrOrderInProgress   = errors.New("order placement already in progress")
)

// FieldErrors maps field names to validation messages. It is returned by the
// checkout wizard when a forward transition is blocked; the caller surfaces
// the messages inline and the wizard state is unchanged.
type FieldErrors map[string]string

// Error formats the field errors in a stable order.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, fe[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
