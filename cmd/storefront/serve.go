// Serve command runs the catalog HTTP server.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/velvetlane/storefront/internal/api"
	"github.com/velvetlane/storefront/internal/catalog"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog API over HTTP",
	Long: `Serve exposes the catalog endpoints:

  GET  /products                 listing with filter/sort query parameters
  GET  /products/{slug}          product detail
  GET  /products/{slug}/reviews  product reviews
  POST /products/wishlist        resolve wishlist IDs to products
  GET  /healthz                  liveness`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	router := api.NewRouter(api.NewHandler(catalog.New()))

	slog.Info("storefront API listening", "addr", serveAddr)
	if err := http.ListenAndServe(serveAddr, router); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
