package domain

import (
	"time"

	catalog "github.com/yash-rana0101/ecom-backend/internal/catalog/domain"
)

// GuestUser is the reserved user id for anonymous carts and orders.
const GuestUser = "guest-user"

type CartItem struct {
	ID        string  `bson:"_id" json:"_id"`
	ProductID string  `bson:"product_id" json:"productId"` // either data space
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"` // snapshotted at add time
}

type Cart struct {
	UserID      string     `bson:"user_id" json:"userId"`
	Items       []CartItem `bson:"items" json:"items"`
	TotalAmount float64    `bson:"total_amount" json:"totalAmount"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updatedAt"`
}

// CalculateTotal recomputes the derived total from the line items. Every
// committed mutation must call this before persisting.
func (c *Cart) CalculateTotal() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	c.TotalAmount = total
	return total
}

// PopulatedItem is a cart line with its product reference replaced by the
// resolved product.
type PopulatedItem struct {
	ID       string          `json:"_id"`
	Product  catalog.Product `json:"productId"`
	Quantity int             `json:"quantity"`
	Price    float64         `json:"price"`
}

// PopulatedCart is the read-only projection served to API consumers.
type PopulatedCart struct {
	UserID      string          `json:"userId"`
	Items       []PopulatedItem `json:"items"`
	TotalAmount float64         `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
