// Package provider is the HTTP client for the external data-provider
// service that aggregates scraped tender records by source.
//
// The client performs a single attempt per call; retry and backoff are
// deliberately absent. Callers fall back to cached or sample data when a
// fetch fails.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"tenderpulse/pkg/contracts/domain"
)

// HealthResponse is the provider's liveness payload.
type HealthResponse struct {
	Status         string `json:"status"`
	Timestamp      string `json:"timestamp,omitempty"`
	Message        string `json:"message,omitempty"`
	ScrapersLoaded int    `json:"scrapers_loaded,omitempty"`
}

// Healthy reports whether the provider considers itself operational.
func (h HealthResponse) Healthy() bool {
	return h.Status == "healthy"
}

// ScraperInfo labels one source for display; it plays no part in
// normalization.
type ScraperInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// ScrapeAllResponse is the aggregated record map returned by /scrape/all.
type ScrapeAllResponse struct {
	Success   bool             `json:"success"`
	Data      domain.SourceMap `json:"data"`
	Timestamp string           `json:"timestamp"`
	Error     string           `json:"error,omitempty"`
}

// Client talks to the data provider over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient creates a provider client. baseURL points at the provider's API
// root (e.g. http://localhost:5000/api).
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With(slog.String("component", "provider_client")),
	}
}

// Health checks provider liveness.
func (c *Client) Health(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	if err := c.getJSON(ctx, "/health", &out); err != nil {
		return HealthResponse{}, err
	}
	return out, nil
}

// Scrapers lists the provider's configured sources.
func (c *Client) Scrapers(ctx context.Context) (map[string]ScraperInfo, error) {
	out := make(map[string]ScraperInfo)
	if err := c.getJSON(ctx, "/scrapers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ScrapeAll fetches the aggregated record map. force bypasses the
// provider's own cache.
func (c *Client) ScrapeAll(ctx context.Context, force bool) (*ScrapeAllResponse, error) {
	path := "/scrape/all"
	if force {
		path += "?force=true"
	}
	var out ScrapeAllResponse
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, fmt.Errorf("provider reported failure: %s", out.Error)
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	endpoint := c.baseURL + path
	if _, err := url.Parse(endpoint); err != nil {
		return fmt.Errorf("invalid provider URL %q: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("Provider request completed",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}
