package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/donaldgifford/closette/internal/metrics"
	domain "github.com/donaldgifford/closette/pkg/types"
)

const tracerName = "github.com/donaldgifford/closette/pkg/extract"

// VisionExtractor implements the Extractor interface using a vision backend.
type VisionExtractor struct {
	backend   VisionBackend
	timeout   time.Duration
	maxTokens int
	log       *slog.Logger
}

// VisionExtractorOption configures the VisionExtractor.
type VisionExtractorOption func(*VisionExtractor)

// WithTimeout bounds a single vision call.
func WithTimeout(d time.Duration) VisionExtractorOption {
	return func(e *VisionExtractor) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithMaxTokens sets the max tokens for vision responses.
func WithMaxTokens(n int) VisionExtractorOption {
	return func(e *VisionExtractor) {
		if n > 0 {
			e.maxTokens = n
		}
	}
}

// WithLogger sets the logger used for fallback warnings.
func WithLogger(l *slog.Logger) VisionExtractorOption {
	return func(e *VisionExtractor) {
		e.log = l
	}
}

// NewVisionExtractor creates a new VisionExtractor.
func NewVisionExtractor(backend VisionBackend, opts ...VisionExtractorOption) *VisionExtractor {
	e := &VisionExtractor{
		backend:   backend,
		timeout:   60 * time.Second,
		maxTokens: 500,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Backend returns the name of the underlying vision backend.
func (e *VisionExtractor) Backend() string {
	return e.backend.Name()
}

// Extract asks the vision backend to describe the image and parses the
// reply. Any failure is returned; there is no retry.
func (e *VisionExtractor) Extract(
	ctx context.Context,
	imageRef string,
) (domain.AttributeSet, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "extract.attributes")
	defer span.End()
	span.SetAttributes(attribute.String("vision.backend", e.backend.Name()))

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	resp, err := e.backend.Generate(ctx, VisionRequest{
		Prompt:    AttributePrompt,
		ImageURL:  imageRef,
		Format:    FormatJSON,
		MaxTokens: e.maxTokens,
	})
	metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.AttributeSet{}, fmt.Errorf("calling vision backend: %w", err)
	}

	attrs, err := ParseAttributes(resp.Content)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.AttributeSet{}, fmt.Errorf("parsing vision reply: %w", err)
	}

	return attrs, nil
}

// ExtractAttributes is Extract with the failure replaced by
// domain.FallbackAttributes. It never fails.
func (e *VisionExtractor) ExtractAttributes(
	ctx context.Context,
	imageRef string,
) domain.AttributeSet {
	attrs, err := e.Extract(ctx, imageRef)
	if err != nil {
		metrics.ExtractionFallbacksTotal.Inc()
		e.log.Warn("image analysis failed, using fallback attributes",
			"backend", e.backend.Name(),
			"error", err,
		)
		return domain.FallbackAttributes()
	}
	return attrs
}
