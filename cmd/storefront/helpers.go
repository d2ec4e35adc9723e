// Shared helpers for storefront CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/velvetlane/storefront/internal/snapshot"
	"github.com/velvetlane/storefront/internal/store"
	"github.com/velvetlane/storefront/pkg/types"
)

// openSnapshots resolves the data directory and opens the configured snapshot
// backend. The caller must defer snapshots.Close().
func openSnapshots() (types.SnapshotStore, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := configBackend
	if backend == "" {
		backend = defaultBackend
	}

	cfg := types.Config{
		Backend: backend,
		DataDir: dataDir,
	}

	snapshots, err := snapshot.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := snapshots.Open(cfg); err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	return snapshots, nil
}

// openCart opens the snapshot backend and rehydrates the cart from it.
// The caller must defer the returned close function.
func openCart() (*store.Cart, func() error, error) {
	snapshots, err := openSnapshots()
	if err != nil {
		return nil, nil, err
	}
	cart, err := store.NewCart(snapshots)
	if err != nil {
		_ = snapshots.Close()
		return nil, nil, fmt.Errorf("load cart: %w", err)
	}
	return cart, snapshots.Close, nil
}

// openWishlist opens the snapshot backend and rehydrates the wishlist from it.
// The caller must defer the returned close function.
func openWishlist() (*store.Wishlist, func() error, error) {
	snapshots, err := openSnapshots()
	if err != nil {
		return nil, nil, err
	}
	wishlist, err := store.NewWishlist(snapshots)
	if err != nil {
		_ = snapshots.Close()
		return nil, nil, fmt.Errorf("load wishlist: %w", err)
	}
	return wishlist, snapshots.Close, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// fatal prints the error and exits with the system error code.
func fatal(prefix string, err error) {
	fmt.Fprintln(os.Stderr, prefix+":", err)
	os.Exit(exitSysError)
}
