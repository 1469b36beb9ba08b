package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/closette/pkg/types"
)

// Searcher runs searches and reports provider capabilities.
type Searcher interface {
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)
	Providers() []domain.ProviderInfo
}

// SearchHandler handles search requests.
type SearchHandler struct {
	searcher Searcher
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(s Searcher) *SearchHandler {
	return &SearchHandler{searcher: s}
}

// SearchInput is the request body for the search endpoint. At least one of
// imageReference and textInput must be non-blank.
type SearchInput struct {
	Body struct {
		_              struct{} `json:"-" additionalProperties:"true"`
		TextInput      string   `json:"textInput,omitempty" doc:"Free-text description to search for" example:"70s floral maxi dress"`
		ImageReference string   `json:"imageReference,omitempty" doc:"Image URL or data URI to derive the query from; wins over textInput" example:"https://example.com/dress.jpg"`
		ImageURL       string   `json:"imageUrl,omitempty" doc:"Alias for imageReference"`
	}
}

// SearchOutput is the response body for the search endpoint.
type SearchOutput struct {
	Body *domain.SearchResponse
}

// Search fans the query out to every provider and returns the merged
// results. Provider failures never fail the request.
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	req := domain.SearchRequest{
		ImageReference: input.Body.ImageReference,
		TextInput:      input.Body.TextInput,
	}
	if !req.HasImage() {
		req.ImageReference = input.Body.ImageURL
	}

	resp, err := h.searcher.Search(ctx, req)
	if errors.Is(err, domain.ErrMissingQuerySource) {
		return nil, huma.Error400BadRequest(err.Error())
	}
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	return &SearchOutput{Body: resp}, nil
}

// RegisterSearchRoutes registers search endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodPost,
		Path:        "/api/search",
		Summary:     "Search secondhand marketplaces",
		Description: "Builds a query from the image (via vision analysis) or the text, " +
			"searches Vinted, Depop and eBay concurrently and returns the merged listings.",
		Tags:   []string{"search"},
		Errors: []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.Search)
}
