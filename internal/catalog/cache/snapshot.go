package cache

import (
	"context"
	"sync"
	"time"

	"github.com/yash-rana0101/ecom-backend/internal/catalog/domain"
)

// Fetcher is the part of the remote catalog client the cache needs.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]domain.Product, error)
}

// SnapshotCache holds one snapshot of the catalog for the whole process.
// The lock guards only the snapshot swap; it is not held across the remote
// fetch, so concurrent refreshes are last-writer-wins.
type SnapshotCache struct {
	fetcher Fetcher
	ttl     time.Duration
	now     func() time.Time

	mu        sync.RWMutex
	products  []domain.Product
	fetchedAt time.Time
}

func New(fetcher Fetcher, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		fetcher: fetcher,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *SnapshotCache) GetAll() ([]domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.fetchedAt.IsZero() {
		return nil, false
	}
	fresh := c.now().Sub(c.fetchedAt) < c.ttl
	return c.products, fresh
}

func (c *SnapshotCache) Age() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.fetchedAt.IsZero() {
		return 0
	}
	return c.now().Sub(c.fetchedAt)
}

func (c *SnapshotCache) Refresh(ctx context.Context) ([]domain.Product, error) {
	products, err := c.fetcher.FetchAll(ctx)
	if err != nil {
		// Snapshot stays as-is; it may still be served stale.
		return nil, err
	}

	c.mu.Lock()
	c.products = products
	c.fetchedAt = c.now()
	c.mu.Unlock()

	return products, nil
}

func (c *SnapshotCache) FindByID(id string) (*domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.products {
		if c.products[i].ID == id {
			p := c.products[i]
			return &p, true
		}
	}
	return nil, false
}
