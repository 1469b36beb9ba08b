package ebay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/donaldgifford/closette/internal/metrics"
	domain "github.com/donaldgifford/closette/pkg/types"
)

// Search runs findItemsByKeywords for query and returns at most the
// configured number of results. The client timeout bounds the whole call,
// including any wait for the quota.
func (c *Client) Search(ctx context.Context, query string) ([]domain.ResultItem, error) {
	if c.appID == "" {
		return nil, fmt.Errorf("eBay: %w", domain.ErrMissingAPIKey)
	}

	if c.client.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.client.Timeout)
		defer cancel()
	}

	if c.quota != nil {
		err := c.quota.Acquire(ctx)
		metrics.ProviderQuotaRemaining.
			WithLabelValues(string(domain.PlatformEbay)).
			Set(float64(c.quota.Remaining()))
		if err != nil {
			return nil, err
		}
	}

	u := c.buildSearchURL(query)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"eBay API error (status %d): %s",
			resp.StatusCode,
			string(body),
		)
	}

	var apiResp findingResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	if len(apiResp.FindItemsByKeywordsResponse) == 0 {
		return nil, fmt.Errorf("parsing search response: missing findItemsByKeywordsResponse")
	}

	result := &apiResp.FindItemsByKeywordsResponse[0]
	if ack := first(result.Ack); ack == "Failure" {
		return nil, fmt.Errorf("eBay API failure: %s", result.firstError())
	}

	if len(result.SearchResult) == 0 {
		return []domain.ResultItem{}, nil
	}

	return ToResultItems(result.SearchResult[0].Item, c.currency, c.limit), nil
}

func (c *Client) buildSearchURL(query string) string {
	params := url.Values{}
	params.Set("SECURITY-APPNAME", c.appID)
	params.Set("OPERATION-NAME", "findItemsByKeywords")
	params.Set("SERVICE-VERSION", "1.0.0")
	params.Set("GLOBAL-ID", c.globalID)
	params.Set("KEYWORDS", query)
	params.Set("SORTORDER", c.sortOrder)
	params.Set("OUTPUTSELECTOR", c.selector)
	params.Set("RESPONSE-DATA-FORMAT", "JSON")
	params.Set("REST-PAYLOAD", "true")
	params.Set("paginationInput.entriesPerPage", strconv.Itoa(c.limit))

	return c.findingURL + "?" + params.Encode()
}
