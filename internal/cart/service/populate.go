package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/yash-rana0101/ecom-backend/internal/cart/domain"
	catalog "github.com/yash-rana0101/ecom-backend/internal/catalog/domain"
)

// Populate joins the cart's line items against the product resolver to build
// the view served to API consumers. Items resolve concurrently and failures
// are isolated: a line whose product has vanished from both data spaces gets
// a placeholder so the cart still renders. The stored cart is never mutated.
func (s *CartService) Populate(ctx context.Context, cart *domain.Cart) *domain.PopulatedCart {
	items := make([]domain.PopulatedItem, len(cart.Items))

	var g errgroup.Group
	for i, item := range cart.Items {
		g.Go(func() error {
			product, err := s.resolver.Resolve(ctx, item.ProductID)
			if err != nil {
				product = &catalog.Product{
					ID:   item.ProductID,
					Name: "Product not found",
				}
			}
			items[i] = domain.PopulatedItem{
				ID:       item.ID,
				Product:  *product,
				Quantity: item.Quantity,
				Price:    item.Price,
			}
			return nil
		})
	}
	_ = g.Wait() // resolution never errors, placeholders stand in

	return &domain.PopulatedCart{
		UserID:      cart.UserID,
		Items:       items,
		TotalAmount: cart.TotalAmount,
		CreatedAt:   cart.CreatedAt,
		UpdatedAt:   cart.UpdatedAt,
	}
}
