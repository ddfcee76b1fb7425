package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	cartdomain "github.com/yash-rana0101/ecom-backend/internal/cart/domain"
	cartrepo "github.com/yash-rana0101/ecom-backend/internal/cart/repository"
	"github.com/yash-rana0101/ecom-backend/internal/checkout/domain"
	"github.com/yash-rana0101/ecom-backend/internal/checkout/repository"
)

var ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

// CheckoutRequest carries the customer contact fields plus the already
// populated cart items; checkout does not resolve products itself.
type CheckoutRequest struct {
	CustomerName  string         `json:"customerName" validate:"required"`
	CustomerEmail string         `json:"customerEmail" validate:"required,email"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	City          string         `json:"city"`
	State         string         `json:"state"`
	ZipCode       string         `json:"zipCode"`
	Country       string         `json:"country"`
	Items         []CheckoutItem `json:"cartItems" validate:"omitempty,dive"`
}

type CheckoutItem struct {
	ProductID   string  `json:"productId" validate:"required"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity" validate:"min=1"`
	Price       float64 `json:"price" validate:"min=0"`
}

// CartClearer is the one cart operation checkout consumes.
type CartClearer interface {
	Clear(ctx context.Context, userID string) (*cartdomain.Cart, error)
}

type Service struct {
	repo     repository.OrderRepository
	cart     CartClearer
	validate *validator.Validate
}

func New(repo repository.OrderRepository, cart CartClearer) *Service {
	return &Service{
		repo:     repo,
		cart:     cart,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Checkout validates the request, records the order and clears the user's
// cart. Nothing is persisted when validation fails.
func (s *Service) Checkout(ctx context.Context, userID string, req *CheckoutRequest) (*domain.Order, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]domain.OrderItem, len(req.Items))
	total := 0.0
	for i, item := range req.Items {
		name := item.ProductName
		if name == "" {
			name = "Unknown Product"
		}
		items[i] = domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: name,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
		total += item.Price * float64(item.Quantity)
	}

	order := &domain.Order{
		OrderNumber:   domain.NewOrderNumber(),
		UserID:        userID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		Country:       req.Country,
		Items:         items,
		TotalAmount:   total,
		Status:        domain.StatusCompleted,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	// A user checking out without ever touching the cart endpoints has no
	// stored cart; that is fine.
	if _, err := s.cart.Clear(ctx, userID); err != nil && !errors.Is(err, cartrepo.ErrCartNotFound) {
		log.Printf("failed to clear cart after checkout for %s: %v", userID, err)
	}

	return order, nil
}

func (s *Service) OrderHistory(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.FindByUser(ctx, userID)
}
