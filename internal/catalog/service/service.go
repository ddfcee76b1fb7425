package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/yash-rana0101/ecom-backend/internal/catalog/cache"
	"github.com/yash-rana0101/ecom-backend/internal/catalog/domain"
	"github.com/yash-rana0101/ecom-backend/internal/catalog/repository"
)

// RemoteClient is the part of the catalog client the resolver needs directly.
// Full-catalog fetches go through the cache instead.
type RemoteClient interface {
	FetchOne(ctx context.Context, remoteID string) (*domain.Product, error)
}

// Service resolves product ids across the two data spaces and serves the
// product listing with its cache/store fallback chain.
type Service struct {
	repo   repository.ProductRepository
	cache  cache.ProductCache
	client RemoteClient
}

func New(repo repository.ProductRepository, cache cache.ProductCache, client RemoteClient) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		client: client,
	}
}

// Resolve returns the normalized product for an id from either data space.
// Local ids are looked up only in the persisted store; remote ids check the
// cached snapshot before going upstream. A remote id that cannot be fetched
// resolves to ErrProductNotFound so callers can degrade instead of failing.
func (s *Service) Resolve(ctx context.Context, productID string) (*domain.Product, error) {
	pid := domain.ClassifyID(productID)

	if pid.Kind == domain.LocalID {
		return s.repo.FindByID(ctx, pid.Value)
	}

	if p, ok := s.cache.FindByID(pid.Value); ok {
		return p, nil
	}

	p, err := s.client.FetchOne(ctx, pid.Value)
	if err != nil {
		log.Printf("failed to fetch product %s from remote catalog: %v", pid.Value, err)
		return nil, repository.ErrProductNotFound
	}
	return p, nil
}

// ProductList is a product listing plus metadata about where it came from.
type ProductList struct {
	Products []domain.Product
	Cached   bool
	Stale    bool
	Fallback bool
	CacheAge time.Duration
}

// ListProducts serves the full catalog: fresh cache first, then one refresh
// attempt, then the stale snapshot, then the persisted store. It only fails
// when every fallback has failed too.
func (s *Service) ListProducts(ctx context.Context) (*ProductList, error) {
	if products, fresh := s.cache.GetAll(); fresh {
		return &ProductList{
			Products: products,
			Cached:   true,
			CacheAge: s.cache.Age(),
		}, nil
	}

	products, err := s.cache.Refresh(ctx)
	if err == nil {
		return &ProductList{Products: products}, nil
	}
	log.Printf("failed to refresh catalog cache: %v", err)

	if stale, _ := s.cache.GetAll(); stale != nil {
		return &ProductList{
			Products: stale,
			Cached:   true,
			Stale:    true,
			CacheAge: s.cache.Age(),
		}, nil
	}

	stored, dbErr := s.repo.FindAll(ctx)
	if dbErr != nil {
		return nil, fmt.Errorf("failed to fetch products from all sources: %w", dbErr)
	}
	return &ProductList{Products: stored, Fallback: true}, nil
}
