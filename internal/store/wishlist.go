package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/velvetlane/storefront/pkg/types"
)

// Wishlist owns the set of product IDs liked by the user. Adds are
// idempotent and removals of absent IDs are no-ops. State persists to the
// wishlist-storage slot on every mutation.
type Wishlist struct {
	mu        sync.RWMutex
	snapshots types.SnapshotStore
	items     []string
}

// NewWishlist creates a wishlist rehydrated from the wishlist-storage slot.
// A missing or undecodable snapshot starts the wishlist empty.
func NewWishlist(snapshots types.SnapshotStore) (*Wishlist, error) {
	w := &Wishlist{snapshots: snapshots}

	raw, err := snapshots.Load(types.SlotWishlist)
	if errors.Is(err, types.ErrSlotNotFound) {
		return w, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading wishlist snapshot: %w", err)
	}

	var state types.WishlistState
	if err := json.Unmarshal(raw, &state); err != nil {
		return w, nil
	}
	w.items = state.Items
	return w, nil
}

// AddItem adds the product ID to the wishlist. Idempotent: adding an ID
// already present changes nothing.
func (w *Wishlist) AddItem(productID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.containsLocked(productID) {
		return nil
	}
	w.items = append(w.items, productID)
	return w.persistLocked()
}

// RemoveItem removes the product ID. No-op if absent.
func (w *Wishlist) RemoveItem(productID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, id := range w.items {
		if id == productID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return w.persistLocked()
		}
	}
	return nil
}

// ToggleItem adds the ID if absent and removes it if present.
func (w *Wishlist) ToggleItem(productID string) error {
	if w.IsInWishlist(productID) {
		return w.RemoveItem(productID)
	}
	return w.AddItem(productID)
}

// IsInWishlist reports membership of the product ID.
func (w *Wishlist) IsInWishlist(productID string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.containsLocked(productID)
}

// IDs returns a copy of the wishlisted product IDs.
func (w *Wishlist) IDs() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	ids := make([]string, len(w.items))
	copy(ids, w.items)
	return ids
}

// Count returns the number of wishlisted products.
func (w *Wishlist) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.items)
}

// containsLocked reports membership. The caller must hold w.mu.
func (w *Wishlist) containsLocked(productID string) bool {
	for _, id := range w.items {
		if id == productID {
			return true
		}
	}
	return false
}

// persistLocked writes the full wishlist state to its slot. The caller
// must hold w.mu.
func (w *Wishlist) persistLocked() error {
	state := types.WishlistState{Items: w.items}
	if state.Items == nil {
		state.Items = []string{}
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding wishlist snapshot: %w", err)
	}
	if err := w.snapshots.Save(types.SlotWishlist, payload); err != nil {
		return fmt.Errorf("persisting wishlist: %w", err)
	}
	return nil
}
