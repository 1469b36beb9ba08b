package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/closette/pkg/types"
)

// ProviderView describes one marketplace provider.
type ProviderView struct {
	Platform       domain.Platform `json:"platform" example:"Vinted"`
	Enabled        bool            `json:"enabled"`
	Stubbed        bool            `json:"stubbed" doc:"Results are synthesized rather than parsed"`
	ResultCap      int             `json:"resultCap" example:"3" doc:"Maximum results contributed per search"`
	PriceFormat    string          `json:"priceFormat" doc:"How the price string is rendered"`
	TimeoutSeconds int             `json:"timeoutSeconds" example:"10"`
}

// ProvidersOutput is the response body for the providers endpoint.
type ProvidersOutput struct {
	Body struct {
		Providers []ProviderView `json:"providers"`
	}
}

// ProvidersHandler reports provider capabilities.
type ProvidersHandler struct {
	searcher Searcher
}

// NewProvidersHandler creates a new ProvidersHandler.
func NewProvidersHandler(s Searcher) *ProvidersHandler {
	return &ProvidersHandler{searcher: s}
}

// List returns every configured provider in merge order.
func (h *ProvidersHandler) List(_ context.Context, _ *struct{}) (*ProvidersOutput, error) {
	infos := h.searcher.Providers()

	out := &ProvidersOutput{}
	out.Body.Providers = make([]ProviderView, 0, len(infos))
	for _, info := range infos {
		out.Body.Providers = append(out.Body.Providers, ProviderView{
			Platform:       info.Platform,
			Enabled:        info.Enabled,
			Stubbed:        info.Stubbed,
			ResultCap:      info.ResultCap,
			PriceFormat:    info.PriceFormat,
			TimeoutSeconds: info.TimeoutSeconds(),
		})
	}
	return out, nil
}

// RegisterProviderRoutes registers provider endpoints with the Huma API.
func RegisterProviderRoutes(api huma.API, h *ProvidersHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-providers",
		Method:      http.MethodGet,
		Path:        "/api/providers",
		Summary:     "List marketplace providers",
		Description: "Reports which providers are enabled, which are stubbed, and how each formats prices.",
		Tags:        []string{"providers"},
	}, h.List)
}
