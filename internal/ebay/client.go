// Package ebay provides a client for the eBay Finding API's
// findItemsByKeywords operation, normalizing hits into result items.
package ebay

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	domain "github.com/donaldgifford/closette/pkg/types"
)

const (
	defaultFindingURL = "https://svcs.ebay.com/services/search/FindingService/v1"
	defaultGlobalID   = "EBAY-GB"
	defaultCurrency   = "GBP"
	defaultSortOrder  = "PricePlusShippingLowest"
	defaultSelector   = "SellerInfo"
	defaultLimit      = 5
	defaultTimeout    = 15 * time.Second
)

// Client searches eBay through the Finding API.
type Client struct {
	appID      string
	findingURL string
	globalID   string
	currency   string
	sortOrder  string
	selector   string
	limit      int
	client     *http.Client
	quota      *Quota
}

// Option configures the Client.
type Option func(*Client)

// WithFindingURL overrides the default Finding API endpoint.
func WithFindingURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.findingURL = u
		}
	}
}

// WithGlobalID overrides the eBay site, e.g. EBAY-US.
func WithGlobalID(id string) Option {
	return func(c *Client) {
		if id != "" {
			c.globalID = id
		}
	}
}

// WithCurrency overrides the suffix appended to every price.
func WithCurrency(code string) Option {
	return func(c *Client) {
		if code != "" {
			c.currency = code
		}
	}
}

// WithSortOrder overrides the SORTORDER parameter.
func WithSortOrder(order string) Option {
	return func(c *Client) {
		if order != "" {
			c.sortOrder = order
		}
	}
}

// WithOutputSelector overrides the OUTPUTSELECTOR parameter.
func WithOutputSelector(sel string) Option {
	return func(c *Client) {
		if sel != "" {
			c.selector = sel
		}
	}
}

// WithLimit caps the number of results requested and returned.
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
			c.client.Timeout = d
		}
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithQuota paces calls and enforces a daily allowance.
func WithQuota(q *Quota) Option {
	return func(c *Client) {
		c.quota = q
	}
}

// NewClient creates a new Finding API client. An empty appID yields a
// client whose searches fail with domain.ErrMissingAPIKey.
func NewClient(appID string, opts ...Option) *Client {
	c := &Client{
		appID:      appID,
		findingURL: defaultFindingURL,
		globalID:   defaultGlobalID,
		currency:   defaultCurrency,
		sortOrder:  defaultSortOrder,
		selector:   defaultSelector,
		limit:      defaultLimit,
		client: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Platform returns domain.PlatformEbay.
func (*Client) Platform() domain.Platform {
	return domain.PlatformEbay
}

// Info describes the adapter's behavior.
func (c *Client) Info() domain.ProviderInfo {
	return domain.ProviderInfo{
		Platform:    domain.PlatformEbay,
		Enabled:     true,
		ResultCap:   c.limit,
		PriceFormat: "<amount> " + c.currency,
		Timeout:     c.client.Timeout,
	}
}
