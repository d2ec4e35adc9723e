// Package main provides the storefront CLI: a local-first shopping cart,
// wishlist, and checkout against the built-in catalog, plus an HTTP server
// exposing the catalog endpoints.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
