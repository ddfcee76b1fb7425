package repository

import (
	"context"

	"github.com/yash-rana0101/ecom-backend/internal/checkout/domain"
)

// OrderRepository persists completed orders, keyed by order number.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	// FindByUser returns the user's orders, newest first.
	FindByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
