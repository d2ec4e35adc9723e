// Package snapshot implements durable client-local storage for named state
// snapshots. Two backends are available: SQLite (the default) keeps every
// slot as a row in a single table; the file backend keeps one JSON file per
// slot. Both persist the full payload on every Save with last-write-wins
// semantics.
package snapshot

import (
	"github.com/velvetlane/storefront/pkg/types"
)

// New returns an unopened snapshot store for the backend named in config.
// The config is validated again on Open; an unknown backend fails here so
// callers get the error before touching the filesystem.
func New(config types.Config) (types.SnapshotStore, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	switch config.Backend {
	case types.BackendFile:
		return NewFileStore(), nil
	default:
		return NewSQLiteStore(), nil
	}
}
