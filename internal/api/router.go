package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(products *ProductHandler, carts *CartHandler, checkout *CheckoutHandler, timeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(timeout))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Data:    map[string]string{"status": "Server is running", "timestamp": time.Now().UTC().Format(time.RFC3339)},
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", products.List)
			r.Get("/{id}", products.Get)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", carts.Get)
			r.Post("/", carts.AddItem)
			r.Put("/{id}", carts.UpdateItem)
			r.Delete("/{id}", carts.RemoveItem)
			r.Delete("/", carts.Clear)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", checkout.Checkout)
			r.Get("/orders", checkout.OrderHistory)
		})
	})

	return r
}
