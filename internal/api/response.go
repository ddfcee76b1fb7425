package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	cartdomain "github.com/yash-rana0101/ecom-backend/internal/cart/domain"
	cartrepo "github.com/yash-rana0101/ecom-backend/internal/cart/repository"
	cartservice "github.com/yash-rana0101/ecom-backend/internal/cart/service"
	catalogrepo "github.com/yash-rana0101/ecom-backend/internal/catalog/repository"
	checkoutservice "github.com/yash-rana0101/ecom-backend/internal/checkout/service"
)

// Response is the uniform envelope every endpoint returns.
type Response struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Error    string      `json:"error,omitempty"`
	Count    *int        `json:"count,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Cached   bool        `json:"cached,omitempty"`
	Stale    bool        `json:"stale,omitempty"`
	Fallback bool        `json:"fallback,omitempty"`
	CacheAge *int        `json:"cacheAge,omitempty"` // seconds; set whenever Cached is true
}

func respondJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	resp := Response{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	respondJSON(w, status, resp)
}

// respondServiceError maps service-layer errors onto HTTP statuses. Anything
// outside the known taxonomy is a generic server error with the underlying
// message attached.
func respondServiceError(w http.ResponseWriter, err error, message string) {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, cartservice.ErrInvalidQuantity),
		errors.Is(err, cartservice.ErrInsufficientStock),
		errors.Is(err, checkoutservice.ErrEmptyCart),
		errors.As(err, &validationErrs):
		respondError(w, http.StatusBadRequest, message, err)
	case errors.Is(err, catalogrepo.ErrProductNotFound),
		errors.Is(err, cartrepo.ErrCartNotFound),
		errors.Is(err, cartservice.ErrItemNotFound):
		respondError(w, http.StatusNotFound, message, err)
	default:
		respondError(w, http.StatusInternalServerError, message, err)
	}
}

func intPtr(n int) *int {
	return &n
}

// userID extracts the caller's identity from the user-id header, with the
// reserved guest value standing in for anonymous requests.
func userID(r *http.Request) string {
	if id := r.Header.Get("user-id"); id != "" {
		return id
	}
	return cartdomain.GuestUser
}
