// Package depop queries Depop through the ScrapingBee rendering proxy.
//
// The fetched page is not parsed yet: a successful proxy call yields one
// synthesized placeholder result pointing at the Depop search page, and
// Info reports the adapter as stubbed.
package depop

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	domain "github.com/donaldgifford/closette/pkg/types"
)

const (
	defaultProxyURL  = "https://api.scrapingbee.com/api/v1"
	defaultSearchURL = "https://www.depop.com/search/"
	defaultTimeout   = 15 * time.Second

	placeholderPrice     = "£25"
	placeholderImage     = "https://via.placeholder.com/200"
	placeholderCondition = "Good"
)

// Client fetches Depop search pages through ScrapingBee.
type Client struct {
	httpClient       *resty.Client
	apiKey           string
	proxyURL         string
	searchURL        string
	renderJavaScript bool
}

// Option configures the Client.
type Option func(*Client)

// WithProxyURL overrides the ScrapingBee endpoint.
func WithProxyURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.proxyURL = u
		}
	}
}

// WithSearchURL overrides the Depop search page the proxy renders.
func WithSearchURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.searchURL = u
		}
	}
}

// WithRenderJavaScript asks the proxy to execute page scripts.
func WithRenderJavaScript(render bool) Option {
	return func(c *Client) {
		c.renderJavaScript = render
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

// NewClient creates a new ScrapingBee-backed Depop client. An empty apiKey
// yields a client whose searches fail with domain.ErrMissingAPIKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:    apiKey,
		proxyURL:  defaultProxyURL,
		searchURL: defaultSearchURL,
		httpClient: resty.New().
			SetDebug(false).
			SetTimeout(defaultTimeout).
			SetTransport(otelhttp.NewTransport(http.DefaultTransport)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Platform returns domain.PlatformDepop.
func (*Client) Platform() domain.Platform {
	return domain.PlatformDepop
}

// Info describes the adapter's behavior.
func (c *Client) Info() domain.ProviderInfo {
	return domain.ProviderInfo{
		Platform:    domain.PlatformDepop,
		Enabled:     true,
		Stubbed:     true,
		ResultCap:   1,
		PriceFormat: "£<amount>",
		Timeout:     c.httpClient.GetClient().Timeout,
	}
}

// PageURL returns the Depop search page for query.
func (c *Client) PageURL(query string) string {
	return c.searchURL + "?q=" + url.QueryEscape(query)
}

// Search renders the Depop search page for query through the proxy. On
// success it returns a single placeholder item linking to that page.
func (c *Client) Search(ctx context.Context, query string) ([]domain.ResultItem, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("depop: %w", domain.ErrMissingAPIKey)
	}

	page := c.PageURL(query)

	_, err := handleError(c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api_key":           c.apiKey,
			"url":               page,
			"render_javascript": fmt.Sprintf("%t", c.renderJavaScript),
		}).
		Get(c.proxyURL))
	if err != nil {
		return nil, fmt.Errorf("fetching search page: %w", err)
	}

	// TODO: parse listing cards out of the rendered page instead of
	// returning a placeholder.
	return []domain.ResultItem{{
		Title:      "Depop: " + query + " - Vintage Find",
		Price:      placeholderPrice,
		ImageURL:   placeholderImage,
		ListingURL: page,
		Platform:   domain.PlatformDepop,
		Condition:  placeholderCondition,
	}}, nil
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
