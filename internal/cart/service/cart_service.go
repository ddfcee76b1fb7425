package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/yash-rana0101/ecom-backend/internal/cart/cache"
	"github.com/yash-rana0101/ecom-backend/internal/cart/domain"
	"github.com/yash-rana0101/ecom-backend/internal/cart/repository"
	catalog "github.com/yash-rana0101/ecom-backend/internal/catalog/domain"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrItemNotFound      = errors.New("item not found in cart")
	ErrInsufficientStock = errors.New("insufficient stock available")
)

// ProductResolver resolves a product id from either data space. An id that
// cannot be resolved reports the catalog repository's not-found error.
type ProductResolver interface {
	Resolve(ctx context.Context, productID string) (*catalog.Product, error)
}

type CartService struct {
	repo     repository.CartRepository
	cache    cache.CartCache
	resolver ProductResolver
	sfg      singleflight.Group // Prevents cache stampede
}

func NewCartService(repo repository.CartRepository, cache cache.CartCache, resolver ProductResolver) *CartService {
	return &CartService{
		repo:     repo,
		cache:    cache,
		resolver: resolver,
	}
}

// GetCart returns the user's cart, creating an empty one lazily on first
// access. Reads go through the cache; concurrent misses for the same user
// are collapsed into one repository read.
func (s *CartService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	v, err, _ := s.sfg.Do(userID, func() (interface{}, error) {
		cart, err := s.cache.Get(ctx, userID)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		cart, errGet := s.repo.GetCart(ctx, userID)
		if errors.Is(errGet, repository.ErrCartNotFound) {
			cart = &domain.Cart{
				UserID:    userID,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			// Persist the auto-created cart so later mutations find it.
			if errUpsert := s.repo.UpsertCart(ctx, cart); errUpsert != nil {
				return nil, errUpsert
			}
			return cart, nil
		}
		if errGet != nil {
			return nil, errGet
		}

		go func() {
			if errSet := s.cache.Set(context.Background(), userID, cart); errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return cart, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Cart), nil
}

// AddItem puts quantity units of a product into the user's cart. The product
// must resolve and have enough stock for the added quantity; an existing line
// for the same product accumulates instead of duplicating. The unit price is
// snapshotted from the resolved product at add time.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.resolver.Resolve(ctx, productID)
	if err != nil {
		return nil, err
	}
	// Stock is checked against the added quantity only; an existing line's
	// prior quantity is not re-validated here.
	if product.Stock < quantity {
		return nil, ErrInsufficientStock
	}

	cart, err := s.repo.GetCart(ctx, userID)
	if errors.Is(err, repository.ErrCartNotFound) {
		cart = &domain.Cart{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, domain.CartItem{
			ID:        uuid.NewString(),
			ProductID: productID,
			Quantity:  quantity,
			Price:     product.Price,
		})
	}

	cart.CalculateTotal()
	if err := s.repo.UpsertCart(ctx, cart); err != nil {
		return nil, err
	}

	s.invalidateCache(userID)
	return cart, nil
}

// UpdateItem sets the absolute quantity of a cart line. The line's product is
// re-resolved and its current stock must cover the new quantity.
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	var item *domain.CartItem
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			item = &cart.Items[i]
			break
		}
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	product, err := s.resolver.Resolve(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	if product.Stock < quantity {
		return nil, ErrInsufficientStock
	}

	item.Quantity = quantity
	cart.CalculateTotal()
	if err := s.repo.UpsertCart(ctx, cart); err != nil {
		return nil, err
	}

	s.invalidateCache(userID)
	return cart, nil
}

// RemoveItem filters a line out of the cart by id. Removing an id that is not
// in the cart is not an error; the cart is simply left as it was.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) (*domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ID != itemID {
			items = append(items, item)
		}
	}
	cart.Items = items

	cart.CalculateTotal()
	if err := s.repo.UpsertCart(ctx, cart); err != nil {
		return nil, err
	}

	s.invalidateCache(userID)
	return cart, nil
}

// Clear empties the cart and resets its total to zero.
func (s *CartService) Clear(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.Items = []domain.CartItem{}
	cart.TotalAmount = 0
	if err := s.repo.UpsertCart(ctx, cart); err != nil {
		return nil, err
	}

	s.invalidateCache(userID)
	return cart, nil
}

func (s *CartService) invalidateCache(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, userID); err != nil {
		log.Printf("cache invalidate error: %v", err)
	}
}
