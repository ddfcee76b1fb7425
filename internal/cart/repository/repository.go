package repository

import (
	"context"
	"errors"

	"github.com/yash-rana0101/ecom-backend/internal/cart/domain"
)

var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the interface for cart persistence.
// Consumers define this interface, not the MongoDB implementation.
type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	// UpsertCart writes the whole cart document for its user. Mutations are
	// read-modify-write through this method; concurrent writers for the same
	// user are last-writer-wins (known limitation, see DESIGN.md).
	UpsertCart(ctx context.Context, cart *domain.Cart) error
}
