// Package vinted searches Vinted listings through the Lobstr item-search
// broker.
package vinted

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	domain "github.com/donaldgifford/closette/pkg/types"
)

const (
	defaultSearchURL = "https://api.lobstr.io/v1/items/search"
	defaultItemURL   = "https://www.vinted.com/items/"
	defaultLimit     = 3
	defaultTimeout   = 10 * time.Second
)

// Client queries the Lobstr broker for Vinted items.
type Client struct {
	httpClient *resty.Client
	apiKey     string
	searchURL  string
	itemURL    string
	limit      int
}

// Option configures the Client.
type Option func(*Client)

// WithSearchURL overrides the broker search endpoint.
func WithSearchURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.searchURL = u
		}
	}
}

// WithItemURL overrides the prefix joined with an item id to build its
// listing URL.
func WithItemURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.itemURL = u
		}
	}
}

// WithLimit caps the number of results returned.
func WithLimit(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithTimeout overrides the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.SetTimeout(d)
		}
	}
}

// WithTransport overrides the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.SetTransport(rt)
	}
}

// NewClient creates a new Lobstr client. An empty apiKey yields a client
// whose searches fail with domain.ErrMissingAPIKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:    apiKey,
		searchURL: defaultSearchURL,
		itemURL:   defaultItemURL,
		limit:     defaultLimit,
		httpClient: resty.New().
			SetDebug(false).
			SetTimeout(defaultTimeout).
			SetTransport(otelhttp.NewTransport(http.DefaultTransport)).
			SetHeader("Accept", "application/json"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Platform returns domain.PlatformVinted.
func (*Client) Platform() domain.Platform {
	return domain.PlatformVinted
}

// Info describes the adapter's behavior.
func (c *Client) Info() domain.ProviderInfo {
	return domain.ProviderInfo{
		Platform:    domain.PlatformVinted,
		Enabled:     true,
		ResultCap:   c.limit,
		PriceFormat: "provider native (string, number, or \"<amount> <currency>\")",
		Timeout:     c.httpClient.GetClient().Timeout,
	}
}

// Search asks the broker for items matching query and returns at most the
// configured number of results.
func (c *Client) Search(ctx context.Context, query string) ([]domain.ResultItem, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("vinted: %w", domain.ErrMissingAPIKey)
	}

	res, err := handleError(c.httpClient.R().
		SetContext(ctx).
		SetHeader("X-API-Key", c.apiKey).
		SetQueryParam("search_text", query).
		Get(c.searchURL))
	if err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}

	var body searchResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	return ToResultItems(body.Items, c.itemURL, c.limit), nil
}

// handleError turns transport failures and >399 responses into errors.
func handleError(res *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return res, err
	}
	if res.IsError() {
		return res, fmt.Errorf(
			"request failed: %s %s (status: %d)",
			res.Request.Method,
			res.Request.URL,
			res.StatusCode(),
		)
	}
	return res, nil
}
