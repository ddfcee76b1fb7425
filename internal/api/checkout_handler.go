package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/yash-rana0101/ecom-backend/internal/checkout/domain"
	"github.com/yash-rana0101/ecom-backend/internal/checkout/service"
)

type CheckoutService interface {
	Checkout(ctx context.Context, userID string, req *service.CheckoutRequest) (*domain.Order, error)
	OrderHistory(ctx context.Context, userID string) ([]domain.Order, error)
}

type CheckoutHandler struct {
	checkout CheckoutService
}

func NewCheckoutHandler(checkout CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body", err)
		return
	}

	order, err := h.checkout.Checkout(r.Context(), userID(r), &req)
	if err != nil {
		respondServiceError(w, err, "Failed to process checkout")
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    order,
	})
}

func (h *CheckoutHandler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	orders, err := h.checkout.OrderHistory(r.Context(), userID(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch order history", err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Count:   intPtr(len(orders)),
		Data:    orders,
	})
}
