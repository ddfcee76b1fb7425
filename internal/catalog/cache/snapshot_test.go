package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yash-rana0101/ecom-backend/internal/catalog/domain"
)

type mockFetcher struct {
	products []domain.Product
	err      error
	calls    int
}

func (m *mockFetcher) FetchAll(context.Context) ([]domain.Product, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func newTestCache(fetcher *mockFetcher, ttl time.Duration, now *time.Time) *SnapshotCache {
	c := New(fetcher, ttl)
	c.now = func() time.Time { return *now }
	return c
}

func TestGetAll_EmptyCache(t *testing.T) {
	now := time.Now()
	c := newTestCache(&mockFetcher{}, 10*time.Minute, &now)

	products, fresh := c.GetAll()
	assert.Nil(t, products)
	assert.False(t, fresh)
}

func TestRefresh_ReplacesSnapshot(t *testing.T) {
	now := time.Now()
	fetcher := &mockFetcher{products: []domain.Product{{ID: "1", Name: "Backpack"}}}
	c := newTestCache(fetcher, 10*time.Minute, &now)

	products, err := c.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	cached, fresh := c.GetAll()
	assert.True(t, fresh)
	assert.Equal(t, "Backpack", cached[0].Name)

	// A later refresh replaces the snapshot wholesale.
	fetcher.products = []domain.Product{{ID: "2"}, {ID: "3"}}
	_, err = c.Refresh(context.Background())
	require.NoError(t, err)

	cached, _ = c.GetAll()
	assert.Len(t, cached, 2)
}

func TestGetAll_ExpiresAfterTTL(t *testing.T) {
	now := time.Now()
	fetcher := &mockFetcher{products: []domain.Product{{ID: "1"}}}
	c := newTestCache(fetcher, 10*time.Minute, &now)

	_, err := c.Refresh(context.Background())
	require.NoError(t, err)

	now = now.Add(9 * time.Minute)
	_, fresh := c.GetAll()
	assert.True(t, fresh)

	now = now.Add(2 * time.Minute)
	products, fresh := c.GetAll()
	assert.False(t, fresh)
	assert.Len(t, products, 1) // snapshot retained, just no longer fresh
}

func TestRefresh_FailureRetainsSnapshot(t *testing.T) {
	now := time.Now()
	fetcher := &mockFetcher{products: []domain.Product{{ID: "1", Name: "Backpack"}}}
	c := newTestCache(fetcher, 10*time.Minute, &now)

	_, err := c.Refresh(context.Background())
	require.NoError(t, err)

	now = now.Add(11 * time.Minute)
	fetcher.err = errors.New("upstream down")

	_, err = c.Refresh(context.Background())
	require.Error(t, err)

	// Stale snapshot still there.
	products, fresh := c.GetAll()
	assert.False(t, fresh)
	require.Len(t, products, 1)
	assert.Equal(t, "Backpack", products[0].Name)
}

func TestFindByID(t *testing.T) {
	now := time.Now()
	fetcher := &mockFetcher{products: []domain.Product{{ID: "1", Name: "Backpack"}, {ID: "2", Name: "Shirt"}}}
	c := newTestCache(fetcher, 10*time.Minute, &now)

	_, ok := c.FindByID("1")
	assert.False(t, ok) // nothing cached yet

	_, err := c.Refresh(context.Background())
	require.NoError(t, err)

	p, ok := c.FindByID("2")
	require.True(t, ok)
	assert.Equal(t, "Shirt", p.Name)

	_, ok = c.FindByID("99")
	assert.False(t, ok)
}

func TestAge(t *testing.T) {
	now := time.Now()
	fetcher := &mockFetcher{products: []domain.Product{{ID: "1"}}}
	c := newTestCache(fetcher, 10*time.Minute, &now)

	assert.Equal(t, time.Duration(0), c.Age())

	_, err := c.Refresh(context.Background())
	require.NoError(t, err)

	now = now.Add(3 * time.Minute)
	assert.Equal(t, 3*time.Minute, c.Age())
}
