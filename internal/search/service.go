// Package search fans a query out to every marketplace provider and merges
// what comes back.
package search

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/closette/internal/metrics"
	domain "github.com/donaldgifford/closette/pkg/types"
)

const tracerName = "github.com/donaldgifford/closette/internal/search"

// Query source label values.
const (
	SourceImage = "image"
	SourceText  = "text"
)

// Provider is a marketplace adapter.
type Provider interface {
	Platform() domain.Platform
	Info() domain.ProviderInfo
	Search(ctx context.Context, query string) ([]domain.ResultItem, error)
}

// AttributeExtractor derives attributes from an image. It must not fail.
type AttributeExtractor interface {
	ExtractAttributes(ctx context.Context, imageRef string) domain.AttributeSet
}

// Service is the query orchestrator.
type Service struct {
	extractor AttributeExtractor
	providers []Provider
	disabled  []domain.ProviderInfo
	log       *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the logger used for provider failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// WithDisabled lists providers that are configured off. They are reported
// by Providers but never searched.
func WithDisabled(infos ...domain.ProviderInfo) Option {
	return func(s *Service) {
		for _, info := range infos {
			info.Enabled = false
			s.disabled = append(s.disabled, info)
		}
	}
}

// NewService creates a Service. Providers are searched concurrently and
// their results merged Vinted first, then Depop, then eBay.
func NewService(extractor AttributeExtractor, providers []Provider, opts ...Option) *Service {
	ordered := slices.Clone(providers)
	slices.SortStableFunc(ordered, func(a, b Provider) int {
		return cmp.Compare(platformRank(a.Platform()), platformRank(b.Platform()))
	})

	s := &Service{
		extractor: extractor,
		providers: ordered,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func platformRank(p domain.Platform) int {
	if i := slices.Index(domain.Platforms(), p); i >= 0 {
		return i
	}
	return len(domain.Platforms())
}

// Providers describes every configured provider in merge order.
func (s *Service) Providers() []domain.ProviderInfo {
	infos := make([]domain.ProviderInfo, 0, len(s.providers)+len(s.disabled))
	for _, p := range s.providers {
		infos = append(infos, p.Info())
	}
	infos = append(infos, s.disabled...)
	slices.SortStableFunc(infos, func(a, b domain.ProviderInfo) int {
		return cmp.Compare(platformRank(a.Platform), platformRank(b.Platform))
	})
	return infos
}

// Search resolves the query for req and searches every provider. The only
// error it returns is domain.ErrMissingQuerySource; provider and image
// analysis failures are absorbed.
func (s *Service) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "search")
	defer span.End()

	// Outbound work runs to completion even if the caller goes away; each
	// client carries its own timeout.
	detached := context.WithoutCancel(ctx)

	var (
		query  string
		attrs  *domain.AttributeSet
		source string
	)
	if req.HasImage() {
		a := s.extractor.ExtractAttributes(detached, req.ImageReference)
		attrs = &a
		query = a.Query()
		source = SourceImage
	} else {
		query = req.TextInput
		source = SourceText
	}
	metrics.SearchesTotal.WithLabelValues(source).Inc()
	span.SetAttributes(
		attribute.String("search.source", source),
		attribute.String("search.query", query),
	)

	// Goroutines never return an error; each Outcome carries its
	// provider's failure, so Wait only joins.
	outcomes := make([]Outcome, len(s.providers))
	var g errgroup.Group
	for i, p := range s.providers {
		g.Go(func() error {
			outcomes[i] = s.runProvider(detached, p, query)
			return nil
		})
	}
	_ = g.Wait()

	var results []domain.ResultItem
	for _, o := range outcomes {
		results = append(results, o.UnwrapOr(nil)...)
	}
	metrics.SearchResults.Observe(float64(len(results)))

	return domain.NewSearchResponse(query, attrs, results), nil
}

// runProvider calls one provider and contains whatever goes wrong,
// including panics, in the returned Outcome.
func (s *Service) runProvider(ctx context.Context, p Provider, query string) (out Outcome) {
	platform := p.Platform()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "provider.search",
		trace.WithAttributes(attribute.String("provider.platform", string(platform))),
	)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			out = Failed(platform, fmt.Errorf("provider panicked: %v", r))
		}
		out.Duration = time.Since(start)
		s.record(span, out)
		span.End()
	}()

	items, err := p.Search(ctx, query)
	if err != nil {
		return Failed(platform, err)
	}
	return Succeeded(platform, items)
}

func (s *Service) record(span trace.Span, o Outcome) {
	platform := string(o.Platform)
	metrics.ProviderDuration.WithLabelValues(platform).Observe(o.Duration.Seconds())

	if !o.IsOk() {
		metrics.ProviderRequestsTotal.WithLabelValues(platform, metrics.OutcomeError).Inc()
		span.RecordError(o.Err())
		span.SetStatus(codes.Error, o.Err().Error())
		s.log.Warn("provider search failed",
			"platform", platform,
			"duration", o.Duration,
			"error", o.Err(),
		)
		return
	}

	n := len(o.UnwrapOr(nil))
	metrics.ProviderRequestsTotal.WithLabelValues(platform, metrics.OutcomeSuccess).Inc()
	metrics.ProviderResultsTotal.WithLabelValues(platform).Add(float64(n))
	span.SetAttributes(attribute.Int("provider.results", n))
	s.log.Debug("provider search complete",
		"platform", platform,
		"results", n,
		"duration", o.Duration,
	)
}
