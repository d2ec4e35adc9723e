// Package types defines the storefront domain types, the SnapshotStore
// interface for durable client-local state, and the standard errors shared
// by the stores and the checkout wizard.
package types
