package cache

import (
	"context"
	"time"

	"github.com/yash-rana0101/ecom-backend/internal/catalog/domain"
)

// ProductCache is the process-wide snapshot of normalized catalog products.
// Consumers (the product resolver) decide when to refresh.
type ProductCache interface {
	// GetAll returns the current snapshot and whether it is still within the
	// freshness window. An empty cache returns (nil, false).
	GetAll() ([]domain.Product, bool)
	// Age reports how long ago the snapshot was last refreshed.
	Age() time.Duration
	// Refresh fetches a new snapshot from the remote catalog and replaces the
	// current one wholesale. On failure the existing snapshot is retained.
	Refresh(ctx context.Context) ([]domain.Product, error)
	FindByID(id string) (*domain.Product, bool)
}
