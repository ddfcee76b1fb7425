package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yash-rana0101/ecom-backend/internal/cart/domain"
)

// CartService is the part of the cart subsystem the cart endpoints consume.
type CartService interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error)
	UpdateItem(ctx context.Context, userID, itemID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID string) (*domain.Cart, error)
	Clear(ctx context.Context, userID string) (*domain.Cart, error)
	Populate(ctx context.Context, cart *domain.Cart) *domain.PopulatedCart
}

type CartHandler struct {
	carts CartService
}

func NewCartHandler(carts CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	// Pointer so an explicit "quantity": 0 is distinguishable from an
	// absent field; only the latter defaults to 1.
	Quantity *int `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.GetCart(r.Context(), userID(r))
	if err != nil {
		respondServiceError(w, err, "Failed to fetch cart")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.carts.Populate(r.Context(), cart),
	})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "Product ID is required", nil)
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cart, err := h.carts.AddItem(r.Context(), userID(r), req.ProductID, quantity)
	if err != nil {
		respondServiceError(w, err, "Failed to add item to cart")
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Item added to cart",
		Data:    h.carts.Populate(r.Context(), cart),
	})
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	cart, err := h.carts.UpdateItem(r.Context(), userID(r), chi.URLParam(r, "id"), req.Quantity)
	if err != nil {
		respondServiceError(w, err, "Failed to update cart")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart updated",
		Data:    h.carts.Populate(r.Context(), cart),
	})
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.RemoveItem(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err, "Failed to remove item from cart")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item removed from cart",
		Data:    h.carts.Populate(r.Context(), cart),
	})
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.Clear(r.Context(), userID(r))
	if err != nil {
		respondServiceError(w, err, "Failed to clear cart")
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
		Data:    cart,
	})
}
