package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yash-rana0101/ecom-backend/internal/catalog/domain"
	"github.com/yash-rana0101/ecom-backend/internal/catalog/service"
)

// CatalogService is the part of the catalog the product endpoints consume.
type CatalogService interface {
	ListProducts(ctx context.Context) (*service.ProductList, error)
	Resolve(ctx context.Context, productID string) (*domain.Product, error)
}

type ProductHandler struct {
	catalog CatalogService
}

func NewProductHandler(catalog CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch products from all sources", err)
		return
	}

	resp := Response{
		Success:  true,
		Count:    intPtr(len(list.Products)),
		Data:     list.Products,
		Cached:   list.Cached,
		Stale:    list.Stale,
		Fallback: list.Fallback,
	}
	if list.Cached {
		resp.CacheAge = intPtr(int(list.CacheAge.Seconds()))
	}
	switch {
	case list.Stale:
		resp.Message = "Returning cached data due to API error"
	case list.Fallback && len(list.Products) > 0:
		resp.Message = "Returning data from database"
	case len(list.Products) == 0:
		resp.Message = "No products available"
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.Resolve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err, "Product not found")
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: product})
}
