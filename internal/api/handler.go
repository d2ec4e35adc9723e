// Package api exposes the catalog over HTTP: the product listing with filter
// and sort query parameters, product detail and review lookups, and batch
// wishlist resolution.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/velvetlane/storefront/internal/catalog"
	"github.com/velvetlane/storefront/pkg/types"
)

// Handler serves catalog reads. The catalog is immutable, so the handler
// carries no locks and no per-request state.
type Handler struct {
	catalog *catalog.Catalog
}

// NewHandler returns a handler backed by the given catalog.
func NewHandler(c *catalog.Catalog) *Handler {
	return &Handler{catalog: c}
}

// ListProducts returns the catalog filtered and sorted by query parameters.
// Every parameter is optional; absent parameters fall back to the defaults.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	state := types.DefaultFilterState()
	q := r.URL.Query()

	if cats, ok := q["category"]; ok {
		state.SelectedCategories = cats
	}
	if sizes, ok := q["size"]; ok {
		state.SelectedSizes = sizes
	}
	if colors, ok := q["color"]; ok {
		state.SelectedColors = colors
	}
	if v := q.Get("minPrice"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "minPrice must be a number")
			return
		}
		state.PriceRange[0] = min
	}
	if v := q.Get("maxPrice"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "maxPrice must be a number")
			return
		}
		state.PriceRange[1] = max
	}
	if v := q.Get("sort"); v != "" {
		state.SortBy = v
	}
	state.SearchQuery = q.Get("q")
	state.OnlyNew = q.Get("new") == "true"
	state.OnlySale = q.Get("sale") == "true"

	products := h.catalog.Apply(state)
	writeJSON(w, http.StatusOK, productListResponse{Products: products, Total: len(products)})
}

// GetProduct returns a single product by slug.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	product, err := h.catalog.FindBySlug(slug)
	if err != nil {
		writeError(w, http.StatusNotFound, "product_not_found", "no product with slug "+slug)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// GetProductReviews returns the reviews for a product identified by slug.
func (h *Handler) GetProductReviews(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	product, err := h.catalog.FindBySlug(slug)
	if err != nil {
		writeError(w, http.StatusNotFound, "product_not_found", "no product with slug "+slug)
		return
	}
	reviews := h.catalog.Reviews(product.ID)
	if reviews == nil {
		reviews = []types.Review{}
	}
	writeJSON(w, http.StatusOK, reviewListResponse{Reviews: reviews})
}

// ResolveWishlist maps a list of product IDs to full products, preserving
// catalog order and dropping IDs that no longer exist. A body without an ids
// array is rejected with 400.
func (h *Handler) ResolveWishlist(w http.ResponseWriter, r *http.Request) {
	var req resolveWishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	products, err := h.catalog.Resolve(req.IDs)
	if err != nil {
		if errors.Is(err, types.ErrInvalidIDList) {
			writeError(w, http.StatusBadRequest, "invalid_request", "ids must be an array of product IDs")
			return
		}
		writeError(w, http.StatusInternalServerError, "resolve_failed", err.Error())
		return
	}

	slog.InfoContext(r.Context(), "resolved wishlist", "requested", len(req.IDs), "matched", len(products))
	writeJSON(w, http.StatusOK, productListResponse{Products: products, Total: len(products)})
}

// Healthz reports liveness.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: code, Message: msg})
}
