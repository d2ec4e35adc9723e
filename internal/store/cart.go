// Package store implements the cart, wishlist, and filter stores. The cart
// and wishlist persist their full state to a snapshot slot on every mutation
// and rehydrate from it on construction; the filter store is session-only.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/velvetlane/storefront/pkg/types"
)

// Cart is the single source of truth for cart contents and the cart-drawer
// visibility flag. Mutations are permissive: removing or updating an absent
// identity is a no-op, and a quantity update to zero or below removes the
// line. Only persistence I/O can fail.
type Cart struct {
	mu        sync.RWMutex
	snapshots types.SnapshotStore
	items     []types.CartItem
	isOpen    bool
}

// NewCart creates a cart rehydrated from the cart-storage slot. A missing
// or undecodable snapshot starts the cart empty; resets are trivial in this
// model and a corrupt snapshot must not brick the session.
func NewCart(snapshots types.SnapshotStore) (*Cart, error) {
	c := &Cart{snapshots: snapshots}

	raw, err := snapshots.Load(types.SlotCart)
	if errors.Is(err, types.ErrSlotNotFound) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading cart snapshot: %w", err)
	}

	var state types.CartState
	if err := json.Unmarshal(raw, &state); err != nil {
		return c, nil
	}
	c.items = state.Items
	c.isOpen = state.IsOpen
	return c, nil
}

// AddItem adds quantity units of the product in the given size and color.
// If a line with the same identity exists its quantity is incremented;
// otherwise a new line is appended carrying a snapshot of the product.
// Stock is advisory and not enforced here.
func (c *Cart) AddItem(product types.Product, size, color string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Matches(product.ID, size, color) {
			c.items[i].Quantity += quantity
			return c.persistLocked()
		}
	}

	c.items = append(c.items, types.CartItem{
		ProductID:     product.ID,
		Quantity:      quantity,
		SelectedSize:  size,
		SelectedColor: color,
		Product:       product,
	})
	return c.persistLocked()
}

// RemoveItem deletes the line matching the identity. No-op if absent.
func (c *Cart) RemoveItem(productID, size, color string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(productID, size, color)
}

// UpdateQuantity replaces the quantity on the matching line. A quantity of
// zero or below removes the line entirely. No-op if the identity is absent.
func (c *Cart) UpdateQuantity(productID, size, color string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		return c.removeLocked(productID, size, color)
	}

	for i := range c.items {
		if c.items[i].Matches(productID, size, color) {
			c.items[i].Quantity = quantity
			return c.persistLocked()
		}
	}
	return nil
}

// Clear empties the line items unconditionally. Drawer visibility is
// untouched.
func (c *Cart) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	return c.persistLocked()
}

// Toggle flips the drawer visibility flag.
func (c *Cart) Toggle() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isOpen = !c.isOpen
	return c.persistLocked()
}

// Open shows the cart drawer.
func (c *Cart) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isOpen = true
	return c.persistLocked()
}

// Close hides the cart drawer.
func (c *Cart) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isOpen = false
	return c.persistLocked()
}

// IsOpen reports the drawer visibility flag.
func (c *Cart) IsOpen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isOpen
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []types.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]types.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Total returns the sum of line subtotals priced from the embedded product
// snapshots. Always recomputed from current lines, never stored.
func (c *Cart) Total() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// ItemCount returns the sum of line quantities, the cart badge count.
// Distinct from the number of lines.
func (c *Cart) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// removeLocked deletes the matching line. The caller must hold c.mu.
func (c *Cart) removeLocked(productID, size, color string) error {
	for i := range c.items {
		if c.items[i].Matches(productID, size, color) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.persistLocked()
		}
	}
	return nil
}

// persistLocked writes the full cart state to its slot. The caller must
// hold c.mu.
func (c *Cart) persistLocked() error {
	state := types.CartState{Items: c.items, IsOpen: c.isOpen}
	if state.Items == nil {
		state.Items = []types.CartItem{}
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding cart snapshot: %w", err)
	}
	if err := c.snapshots.Save(types.SlotCart, payload); err != nil {
		return fmt.Errorf("persisting cart: %w", err)
	}
	return nil
}
