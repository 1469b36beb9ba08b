package client

import (
	"context"

	domain "github.com/donaldgifford/closette/pkg/types"
)

// Provider mirrors one entry of GET /api/providers.
type Provider struct {
	Platform       domain.Platform `json:"platform"`
	Enabled        bool            `json:"enabled"`
	Stubbed        bool            `json:"stubbed"`
	ResultCap      int             `json:"resultCap"`
	PriceFormat    string          `json:"priceFormat"`
	TimeoutSeconds int             `json:"timeoutSeconds"`
}

// Search submits a search and returns the merged results.
func (c *Client) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := c.post(ctx, "/api/search", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Providers lists the server's marketplace providers.
func (c *Client) Providers(ctx context.Context) ([]Provider, error) {
	var resp struct {
		Providers []Provider `json:"providers"`
	}
	if err := c.get(ctx, "/api/providers", &resp); err != nil {
		return nil, err
	}
	return resp.Providers, nil
}

// Health returns the server's health status string.
func (c *Client) Health(ctx context.Context) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.get(ctx, "/health", &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}
