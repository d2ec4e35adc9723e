package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the catalog endpoints behind the standard middleware stack.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handler.Healthz)
	r.Get("/products", handler.ListProducts)
	r.Post("/products/wishlist", handler.ResolveWishlist)
	r.Get("/products/{slug}", handler.GetProduct)
	r.Get("/products/{slug}/reviews", handler.GetProductReviews)
	return r
}
