package types

// CartItem is one line in the cart, keyed by product, size, and color. At
// most one line exists per identity; adding the same combination again
// increments the quantity instead of appending a duplicate row.
type CartItem struct {
	ProductID     string  `json:"productId"`
	Quantity      int     `json:"quantity"`
	SelectedSize  string  `json:"selectedSize"`
	SelectedColor string  `json:"selectedColor"`
	Product       Product `json:"product"` // snapshot taken at add-time
}

// Matches reports whether the line has the given composite identity.
func (ci CartItem) Matches(productID, size, color string) bool {
	return ci.ProductID == productID &&
		ci.SelectedSize == size &&
		ci.SelectedColor == color
}

// Subtotal returns the line total priced from the embedded snapshot.
func (ci CartItem) Subtotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}

// CartState is the full persisted cart snapshot: the ordered line items
// (insertion order, relevant for display) and the drawer visibility flag.
type CartState struct {
	Items  []CartItem `json:"items"`
	IsOpen bool       `json:"isOpen"`
}

// WishlistState is the persisted wishlist snapshot: a set of product IDs.
// Uniqueness is enforced by the store; insertion order is irrelevant.
type WishlistState struct {
	Items []string `json:"items"`
}
