package cache

import (
	"context"
	"errors"

	"github.com/yash-rana0101/ecom-backend/internal/cart/domain"
)

// CartCache is a read-through cache of persisted carts, invalidated on every
// mutation. Cache failures are logged and bypassed, never surfaced.
type CartCache interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	Set(ctx context.Context, userID string, cart *domain.Cart) error
	Delete(ctx context.Context, userID string) error
}

var ErrCacheMiss = errors.New("cache miss")
