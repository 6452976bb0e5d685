// Package fetch is the shared HTTP layer for all upstream community APIs.
//
// Every source goes through one Client so timeouts, the User-Agent, and
// outbound rate limiting are applied uniformly. Responses are read-only
// GETs; nothing here retries — a failed fetch surfaces to the screen as a
// manual retry prompt.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const userAgent = "clubdeck/1.0 (+https://github.com/clubdeck/clubdeck)"

// Client wraps http.Client with a polite outbound rate limit.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Client with the given per-request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		// The hackatime screen issues ~25 windowed requests in a burst;
		// cap at 10 rps so we stay a good citizen across all screens.
		limiter: rate.NewLimiter(rate.Limit(10), 10),
	}
}

// Get performs a rate-limited GET and returns the response body.
// A bearer token is attached when non-empty. Non-2xx responses are
// errors; the body is closed for the caller in that case.
func (c *Client) Get(ctx context.Context, url, bearer string) (io.ReadCloser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	return resp.Body, nil
}

// GetJSON performs Get and decodes the body into v.
func (c *Client) GetJSON(ctx context.Context, url, bearer string, v any) error {
	body, err := c.Get(ctx, url, bearer)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
