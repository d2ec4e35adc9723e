package types

import "encoding/json"

// Snapshot slot names. Each store serializes its full state to its own
// named slot on every mutation and rehydrates from it on startup.
const (
	SlotCart     = "cart-storage"
	SlotWishlist = "wishlist-storage"
)

// SnapshotStore is durable client-local storage for named state snapshots.
// Payloads are versionless JSON; writes are last-write-wins and there is no
// migration logic.
type SnapshotStore interface {
	// Open connects the store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyOpen if
	// called while already open.
	Open(config Config) error

	// Close releases backend resources. Idempotent: multiple calls succeed.
	// After Close, Load and Save return ErrStoreClosed.
	Close() error

	// Load returns the payload stored in the named slot.
	// Returns ErrSlotNotFound if the slot has never been written.
	Load(slot string) (json.RawMessage, error)

	// Save replaces the payload of the named slot.
	Save(slot string, payload json.RawMessage) error
}
