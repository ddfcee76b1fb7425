package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/yash-rana0101/ecom-backend/internal/catalog/domain"
)

// ErrUpstreamUnavailable is returned once all attempts against the remote
// catalog have been exhausted. It wraps the last attempt's error.
var ErrUpstreamUnavailable = errors.New("remote catalog unavailable")

const (
	maxAttempts = 3
	// The upstream storefront API rejects requests without browser-ish headers.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Client fetches products from the remote catalog service and normalizes
// them into the internal product shape.
type Client struct {
	baseURL string
	http    *http.Client
	backoff time.Duration // attempt N waits N * backoff before retrying
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		backoff: time.Second,
	}
}

// remoteProduct is the upstream wire shape.
type remoteProduct struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Rating      *struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	} `json:"rating"`
}

func (rp remoteProduct) normalize() *domain.Product {
	p := &domain.Product{
		ID:          strconv.FormatInt(rp.ID, 10),
		Name:        rp.Title,
		Price:       rp.Price,
		Description: rp.Description,
		Image:       rp.Image,
		Category:    rp.Category,
		Stock:       domain.DefaultStock, // upstream does not report stock
	}
	if rp.Rating != nil {
		p.Rating = &domain.Rating{Rate: rp.Rating.Rate, Count: rp.Rating.Count}
	}
	return p
}

func (c *Client) FetchAll(ctx context.Context) ([]domain.Product, error) {
	var raw []remoteProduct
	if err := c.getJSON(ctx, "/products", &raw); err != nil {
		return nil, err
	}

	products := make([]domain.Product, len(raw))
	for i, rp := range raw {
		products[i] = *rp.normalize()
	}
	return products, nil
}

func (c *Client) FetchOne(ctx context.Context, remoteID string) (*domain.Product, error) {
	var raw remoteProduct
	if err := c.getJSON(ctx, "/products/"+remoteID, &raw); err != nil {
		return nil, err
	}
	return raw.normalize(), nil
}

// getJSON performs a GET with up to maxAttempts attempts, backing off
// 1s, 2s, ... between them.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := c.tryGet(ctx, path, out)
		if err == nil {
			return nil
		}
		lastErr = err
		log.Printf("catalog GET %s failed (attempt %d/%d): %v", path, attempt, maxAttempts, err)

		if attempt < maxAttempts {
			select {
			case <-time.After(time.Duration(attempt) * c.backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, lastErr)
}

func (c *Client) tryGet(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
