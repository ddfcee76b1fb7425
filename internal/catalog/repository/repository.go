package repository

import (
	"context"
	"errors"

	"github.com/yash-rana0101/ecom-backend/internal/catalog/domain"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the persisted first-party product store. It is only
// queried for local-space ids, and as a last-resort fallback when the remote
// catalog is unreachable with no cached snapshot.
type ProductRepository interface {
	FindByID(ctx context.Context, localID string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
}
