package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/saleslens/pipeline/internal/domain"
	"golang.org/x/time/rate"
)

// productPayload is the wire format of a single product in the catalog API
type productPayload struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}

// listResponse is the wire format of the catalog list endpoint
type listResponse struct {
	Products []productPayload `json:"products"`
	Total    int              `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

// Client handles communication with the product catalog API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	pageSize    int
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new catalog API client
func NewClient(baseURL string, timeout time.Duration, pageSize int, rps float64) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if pageSize == 0 {
		pageSize = 100
	}
	if rps <= 0 {
		rps = 5
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     baseURL,
		pageSize:    pageSize,
		rateLimiter: rate.NewLimiter(rate.Limit(rps), 10),
	}
}

// SetDebug enables or disables debug logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// exponentialBackoff returns the sleep duration before the given retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return 500 * time.Millisecond << (attempt - 1)
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "SalesLens/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	return resp, nil
}

// ListProducts fetches the product catalog page used to prime the cache.
// Transient failures are retried up to 3 times with exponential backoff.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	reqURL := fmt.Sprintf("%s/products?limit=%d", c.baseURL, c.pageSize)

	if c.debug {
		log.Printf("[catalog] ListProducts: %s", reqURL)
	}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			log.Printf("[catalog] list request error (attempt %d): %v", attempt, err)
			lastErr = err
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Printf("[catalog] list API error (attempt %d) - status: %d", attempt, resp.StatusCode)
			lastErr = fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var listResp listResponse
		if err := json.Unmarshal(body, &listResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if c.debug {
			log.Printf("[catalog] fetched %d of %d products", len(listResp.Products), listResp.Total)
		}
		return mapProducts(listResp.Products), nil
	}

	log.Printf("[catalog] all list retries failed")
	return nil, lastErr
}

// GetProduct fetches a single product by its catalog id. Unknown ids map to
// domain.ErrProductNotFound. A single attempt only; per-record lookup
// failures are handled by the caller.
func (c *Client) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/products/%d", c.baseURL, id)

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrCatalogUnavailable, resp.StatusCode, string(body))
	}

	var payload productPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	product := mapProduct(payload)
	return &product, nil
}
