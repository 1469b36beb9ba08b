package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/closette/internal/config"
	"github.com/donaldgifford/closette/internal/depop"
	"github.com/donaldgifford/closette/internal/ebay"
	"github.com/donaldgifford/closette/internal/search"
	"github.com/donaldgifford/closette/internal/vinted"
	"github.com/donaldgifford/closette/pkg/extract"
	domain "github.com/donaldgifford/closette/pkg/types"
)

// buildVisionBackend returns the configured vision backend. Missing
// credentials do not fail here; the backend reports them per call.
func buildVisionBackend(ctx context.Context, cfg config.VisionConfig) (extract.VisionBackend, error) {
	hc := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	loader := extract.NewImageLoader(
		extract.WithImageHTTPClient(hc),
		extract.WithMaxImageBytes(cfg.MaxImageSize),
	)

	switch cfg.Backend {
	case config.BackendAnthropic:
		return extract.NewAnthropicBackend(
			extract.WithAnthropicModel(cfg.Anthropic.Model),
			extract.WithAnthropicAPIKey(cfg.Anthropic.APIKey),
			extract.WithAnthropicHTTPClient(hc),
		), nil
	case config.BackendOllama:
		return extract.NewOllamaBackend(
			cfg.Ollama.Endpoint,
			cfg.Ollama.Model,
			extract.WithOllamaHTTPClient(hc),
			extract.WithOllamaImageLoader(loader),
		), nil
	case config.BackendGemini:
		b, err := extract.NewGeminiBackend(ctx,
			extract.WithGeminiAPIKey(cfg.Gemini.APIKey),
			extract.WithGeminiModel(cfg.Gemini.Model),
			extract.WithGeminiHTTPClient(hc),
			extract.WithGeminiImageLoader(loader),
		)
		if err != nil {
			return nil, fmt.Errorf("creating gemini backend: %w", err)
		}
		return b, nil
	case config.BackendOpenAICompat:
		return extract.NewOpenAICompatBackend(
			cfg.OpenAICompat.Endpoint,
			cfg.OpenAICompat.Model,
			extract.WithOpenAICompatAPIKey(cfg.OpenAICompat.APIKey),
			extract.WithOpenAICompatHTTPClient(hc),
		), nil
	default:
		return nil, fmt.Errorf("unknown vision backend %q", cfg.Backend)
	}
}

func buildExtractor(ctx context.Context, cfg config.VisionConfig, log *slog.Logger) (*extract.VisionExtractor, error) {
	backend, err := buildVisionBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return extract.NewVisionExtractor(backend,
		extract.WithTimeout(cfg.Timeout),
		extract.WithMaxTokens(cfg.MaxTokens),
		extract.WithLogger(log),
	), nil
}

// buildProviders splits the configured providers into those to search and
// those switched off, which are only reported.
func buildProviders(cfg config.ProvidersConfig) ([]search.Provider, []domain.ProviderInfo) {
	var (
		enabled  []search.Provider
		disabled []domain.ProviderInfo
	)
	add := func(on bool, p search.Provider) {
		if on {
			enabled = append(enabled, p)
			return
		}
		disabled = append(disabled, p.Info())
	}

	e := cfg.Ebay
	add(*e.Enabled, ebay.NewClient(e.AppID,
		ebay.WithFindingURL(e.FindingURL),
		ebay.WithGlobalID(e.GlobalID),
		ebay.WithCurrency(e.Currency),
		ebay.WithSortOrder(e.SortOrder),
		ebay.WithOutputSelector(e.OutputField),
		ebay.WithLimit(e.Limit),
		ebay.WithTimeout(e.Timeout),
		ebay.WithQuota(ebay.NewQuota(e.RateLimit, e.RateBurst, e.DailyLimit)),
	))

	v := cfg.Vinted
	add(*v.Enabled, vinted.NewClient(v.APIKey,
		vinted.WithSearchURL(v.SearchURL),
		vinted.WithItemURL(v.ItemURL),
		vinted.WithLimit(v.Limit),
		vinted.WithTimeout(v.Timeout),
	))

	d := cfg.Depop
	add(*d.Enabled, depop.NewClient(d.APIKey,
		depop.WithProxyURL(d.ProxyURL),
		depop.WithSearchURL(d.SearchURL),
		depop.WithRenderJavaScript(d.RenderJavaScript),
		depop.WithTimeout(d.Timeout),
	))

	return enabled, disabled
}

func newSearchService(ctx context.Context, cfg *config.Config, log *slog.Logger) (*search.Service, error) {
	extractor, err := buildExtractor(ctx, cfg.Vision, log)
	if err != nil {
		return nil, err
	}
	enabled, disabled := buildProviders(cfg.Providers)
	return search.NewService(extractor, enabled,
		search.WithLogger(log),
		search.WithDisabled(disabled...),
	), nil
}
