// Package domain defines the core types shared by the closette search
// pipeline: requests, extracted attributes, marketplace results, and the
// response envelope.
package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrMissingQuerySource is returned when a search request carries neither
// an image reference nor text input.
var ErrMissingQuerySource = errors.New("provide imageReference or textInput")

// ErrMissingAPIKey is returned by provider adapters that were constructed
// without credentials. Such providers contribute no results.
var ErrMissingAPIKey = errors.New("API key is not configured")

// Platform identifies the marketplace a result came from.
type Platform string

// Platform constants.
const (
	PlatformEbay   Platform = "eBay"
	PlatformVinted Platform = "Vinted"
	PlatformDepop  Platform = "Depop"
)

// EbayDailyCalls is the Finding API's default per-application allowance
// of calls per day.
const EbayDailyCalls = 5000

// Platforms returns the known platforms in merge order.
func Platforms() []Platform {
	return []Platform{PlatformVinted, PlatformDepop, PlatformEbay}
}

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformEbay, PlatformVinted, PlatformDepop:
		return true
	default:
		return false
	}
}

// SearchRequest is a single search submitted by a client.
type SearchRequest struct {
	ImageReference string `json:"imageReference,omitempty"`
	TextInput      string `json:"textInput,omitempty"`
}

// HasImage reports whether the request carries an image reference. Any
// non-empty value counts.
func (r SearchRequest) HasImage() bool {
	return r.ImageReference != ""
}

// HasText reports whether the request carries text input. Any non-empty
// value counts, whitespace included.
func (r SearchRequest) HasText() bool {
	return r.TextInput != ""
}

// Validate returns ErrMissingQuerySource when neither source is present.
func (r SearchRequest) Validate() error {
	if !r.HasImage() && !r.HasText() {
		return ErrMissingQuerySource
	}
	return nil
}

// AttributeSet holds the descriptive attributes derived from an image.
// Values are opaque and only used to build a search query.
type AttributeSet struct {
	Color    string `json:"color"`
	Pattern  string `json:"pattern"`
	Material string `json:"material"`
	Occasion string `json:"occasion"`
	Era      string `json:"era"`
	Vibe     string `json:"vibe"`
}

// FallbackAttributes returns the attribute set used whenever image analysis
// fails.
func FallbackAttributes() AttributeSet {
	return AttributeSet{
		Color:    "unknown",
		Pattern:  "unknown",
		Material: "unknown",
		Occasion: "casual",
		Era:      "modern",
		Vibe:     "vintage",
	}
}

// Query joins color, pattern, material and vibe with single spaces and
// trims the result.
func (a AttributeSet) Query() string {
	return strings.TrimSpace(strings.Join([]string{
		a.Color,
		a.Pattern,
		a.Material,
		a.Vibe,
	}, " "))
}

// ResultItem is one marketplace listing normalized across providers.
type ResultItem struct {
	Title      string   `json:"title"`
	Price      string   `json:"price"`
	ImageURL   string   `json:"imageUrl"`
	ListingURL string   `json:"listingUrl"`
	Platform   Platform `json:"platform"`
	Condition  string   `json:"condition,omitempty"`
}

// SearchResponse is the envelope returned for a successful search.
type SearchResponse struct {
	Success    bool          `json:"success"`
	Query      string        `json:"query"`
	Attributes *AttributeSet `json:"attributes,omitempty"`
	Results    []ResultItem  `json:"results"`
	Count      int           `json:"count"`
}

// NewSearchResponse builds a success envelope, keeping Count in step with
// Results and never emitting a null results array.
func NewSearchResponse(query string, attrs *AttributeSet, results []ResultItem) *SearchResponse {
	if results == nil {
		results = []ResultItem{}
	}
	return &SearchResponse{
		Success:    true,
		Query:      query,
		Attributes: attrs,
		Results:    results,
		Count:      len(results),
	}
}

// ProviderInfo describes what a provider adapter actually does. Stubbed
// providers make the outbound call but synthesize their results.
type ProviderInfo struct {
	Platform    Platform      `json:"platform"`
	Enabled     bool          `json:"enabled"`
	Stubbed     bool          `json:"stubbed"`
	ResultCap   int           `json:"resultCap"`
	PriceFormat string        `json:"priceFormat"`
	Timeout     time.Duration `json:"-"`
}

// TimeoutSeconds reports the provider timeout in whole seconds.
func (p ProviderInfo) TimeoutSeconds() int {
	return int(p.Timeout / time.Second)
}
