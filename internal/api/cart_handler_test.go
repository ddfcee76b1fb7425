package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yash-rana0101/ecom-backend/internal/cart/domain"
	cartrepo "github.com/yash-rana0101/ecom-backend/internal/cart/repository"
	cartservice "github.com/yash-rana0101/ecom-backend/internal/cart/service"
	catalog "github.com/yash-rana0101/ecom-backend/internal/catalog/domain"
	catalogrepo "github.com/yash-rana0101/ecom-backend/internal/catalog/repository"
)

type mockCartService struct {
	cart *domain.Cart
	err  error

	lastUserID    string
	lastProductID string
	lastItemID    string
	lastQuantity  int
}

func (m *mockCartService) GetCart(_ context.Context, userID string) (*domain.Cart, error) {
	m.lastUserID = userID
	return m.cart, m.err
}

func (m *mockCartService) AddItem(_ context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	m.lastUserID, m.lastProductID, m.lastQuantity = userID, productID, quantity
	return m.cart, m.err
}

func (m *mockCartService) UpdateItem(_ context.Context, userID, itemID string, quantity int) (*domain.Cart, error) {
	m.lastUserID, m.lastItemID, m.lastQuantity = userID, itemID, quantity
	return m.cart, m.err
}

func (m *mockCartService) RemoveItem(_ context.Context, userID, itemID string) (*domain.Cart, error) {
	m.lastUserID, m.lastItemID = userID, itemID
	return m.cart, m.err
}

func (m *mockCartService) Clear(_ context.Context, userID string) (*domain.Cart, error) {
	m.lastUserID = userID
	return m.cart, m.err
}

func (m *mockCartService) Populate(_ context.Context, cart *domain.Cart) *domain.PopulatedCart {
	items := make([]domain.PopulatedItem, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = domain.PopulatedItem{
			ID:       item.ID,
			Product:  catalog.Product{ID: item.ProductID},
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}
	return &domain.PopulatedCart{UserID: cart.UserID, Items: items, TotalAmount: cart.TotalAmount}
}

func serveCart(t *testing.T, svc *mockCartService, method, path, body, user string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	router := NewRouter(
		NewProductHandler(&mockCatalogService{}),
		NewCartHandler(svc),
		NewCheckoutHandler(&mockCheckoutService{}),
		time.Second,
	)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if user != "" {
		req.Header.Set("user-id", user)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestGetCart_Envelope(t *testing.T) {
	svc := &mockCartService{cart: &domain.Cart{
		UserID:      "u1",
		Items:       []domain.CartItem{{ID: "item-1", ProductID: "7", Quantity: 2, Price: 22.30}},
		TotalAmount: 44.60,
	}}

	rec, resp := serveCart(t, svc, http.MethodGet, "/api/cart", "", "u1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "u1", svc.lastUserID)
	require.NotNil(t, resp.Data)
}

func TestGetCart_DefaultsToGuestUser(t *testing.T) {
	svc := &mockCartService{cart: &domain.Cart{UserID: domain.GuestUser}}

	_, _ = serveCart(t, svc, http.MethodGet, "/api/cart", "", "")
	assert.Equal(t, domain.GuestUser, svc.lastUserID)
}

func TestAddItem_Created(t *testing.T) {
	svc := &mockCartService{cart: &domain.Cart{UserID: "u1"}}

	rec, resp := serveCart(t, svc, http.MethodPost, "/api/cart", `{"productId": "7", "quantity": 2}`, "u1")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Item added to cart", resp.Message)
	assert.Equal(t, "7", svc.lastProductID)
	assert.Equal(t, 2, svc.lastQuantity)
}

func TestAddItem_QuantityDefaultsToOne(t *testing.T) {
	svc := &mockCartService{cart: &domain.Cart{UserID: "u1"}}

	_, _ = serveCart(t, svc, http.MethodPost, "/api/cart", `{"productId": "7"}`, "u1")
	assert.Equal(t, 1, svc.lastQuantity)
}

func TestAddItem_ExplicitZeroQuantityRejected(t *testing.T) {
	// "quantity": 0 spelled out in the body is not the same as omitting it;
	// it must reach the service as-is and come back as a 400.
	svc := &mockCartService{err: cartservice.ErrInvalidQuantity}

	rec, resp := serveCart(t, svc, http.MethodPost, "/api/cart", `{"productId": "7", "quantity": 0}`, "u1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, 0, svc.lastQuantity)
}

func TestAddItem_MissingProductID(t *testing.T) {
	svc := &mockCartService{}

	rec, resp := serveCart(t, svc, http.MethodPost, "/api/cart", `{"quantity": 2}`, "u1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Product ID is required", resp.Message)
}

func TestAddItem_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid quantity", cartservice.ErrInvalidQuantity, http.StatusBadRequest},
		{"insufficient stock", cartservice.ErrInsufficientStock, http.StatusBadRequest},
		{"product not found", catalogrepo.ErrProductNotFound, http.StatusNotFound},
		{"internal", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockCartService{err: tt.err}

			rec, resp := serveCart(t, svc, http.MethodPost, "/api/cart", `{"productId": "7", "quantity": 1}`, "u1")

			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.err.Error(), resp.Error)
		})
	}
}

func TestUpdateItem(t *testing.T) {
	svc := &mockCartService{cart: &domain.Cart{UserID: "u1"}}

	rec, resp := serveCart(t, svc, http.MethodPut, "/api/cart/item-1", `{"quantity": 4}`, "u1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cart updated", resp.Message)
	assert.Equal(t, "item-1", svc.lastItemID)
	assert.Equal(t, 4, svc.lastQuantity)
}

func TestUpdateItem_NotFound(t *testing.T) {
	svc := &mockCartService{err: cartservice.ErrItemNotFound}

	rec, _ := serveCart(t, svc, http.MethodPut, "/api/cart/no-such-item", `{"quantity": 4}`, "u1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveItem(t *testing.T) {
	svc := &mockCartService{cart: &domain.Cart{UserID: "u1"}}

	rec, resp := serveCart(t, svc, http.MethodDelete, "/api/cart/item-1", "", "u1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Item removed from cart", resp.Message)
	assert.Equal(t, "item-1", svc.lastItemID)
}

func TestClearCart(t *testing.T) {
	svc := &mockCartService{cart: &domain.Cart{UserID: "u1"}}

	rec, resp := serveCart(t, svc, http.MethodDelete, "/api/cart", "", "u1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cart cleared", resp.Message)
}

func TestClearCart_NotFound(t *testing.T) {
	svc := &mockCartService{err: cartrepo.ErrCartNotFound}

	rec, resp := serveCart(t, svc, http.MethodDelete, "/api/cart", "", "u1")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
}
