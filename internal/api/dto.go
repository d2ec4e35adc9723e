package api

import "github.com/velvetlane/storefront/pkg/types"

// resolveWishlistRequest is the body of POST /products/wishlist. A missing or
// null ids field decodes to nil, which the handler rejects.
type resolveWishlistRequest struct {
	IDs []string `json:"ids"`
}

type productListResponse struct {
	Products []types.Product `json:"products"`
	Total    int             `json:"total"`
}

type reviewListResponse struct {
	Reviews []types.Review `json:"reviews"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
