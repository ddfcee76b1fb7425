package domain

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type OrderItem struct {
	ProductID   string  `bson:"product_id" json:"productId"`
	ProductName string  `bson:"product_name" json:"productName"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	Price       float64 `bson:"price" json:"price"`
}

type Order struct {
	OrderNumber   string      `bson:"order_number" json:"orderNumber"`
	UserID        string      `bson:"user_id" json:"userId"`
	CustomerName  string      `bson:"customer_name" json:"customerName"`
	CustomerEmail string      `bson:"customer_email" json:"customerEmail"`
	Phone         string      `bson:"phone,omitempty" json:"phone,omitempty"`
	Address       string      `bson:"address,omitempty" json:"address,omitempty"`
	City          string      `bson:"city,omitempty" json:"city,omitempty"`
	State         string      `bson:"state,omitempty" json:"state,omitempty"`
	ZipCode       string      `bson:"zip_code,omitempty" json:"zipCode,omitempty"`
	Country       string      `bson:"country,omitempty" json:"country,omitempty"`
	Items         []OrderItem `bson:"items" json:"items"`
	TotalAmount   float64     `bson:"total_amount" json:"totalAmount"`
	Status        string      `bson:"status" json:"status"`
	CreatedAt     time.Time   `bson:"created_at" json:"createdAt"`
}

const orderNumberAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewOrderNumber generates an order number of the form
// ORD-<base36 timestamp>-<random suffix>, uppercased.
func NewOrderNumber() string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)

	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.Intn(len(orderNumberAlphabet))]
	}

	return strings.ToUpper(fmt.Sprintf("ORD-%s-%s", timestamp, suffix))
}
