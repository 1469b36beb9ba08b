// Package extract provides vision-based attribute extraction for clothing
// images, abstracted behind interfaces for testability.
package extract

import (
	"context"

	domain "github.com/donaldgifford/closette/pkg/types"
)

// FormatJSON is the format string for requesting JSON mode from vision backends.
const FormatJSON = "json"

// VisionRequest defines the input for a vision generation call. ImageURL is
// either an http(s) URL or a data: URI; backends that cannot reference a
// URL directly load it themselves.
type VisionRequest struct {
	Prompt    string
	ImageURL  string
	Format    string // FormatJSON for JSON mode
	MaxTokens int
}

// TokenUsage tracks vision model token consumption.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// GenerateResponse holds the result of a vision generation call.
type GenerateResponse struct {
	Content string
	Model   string
	Usage   TokenUsage
}

// VisionBackend defines the interface for image-grounded text generation.
type VisionBackend interface {
	Generate(ctx context.Context, req VisionRequest) (GenerateResponse, error)
	Name() string
}

// Extractor derives an AttributeSet from an image reference.
type Extractor interface {
	// Extract returns an error on any failure.
	Extract(ctx context.Context, imageRef string) (domain.AttributeSet, error)
	// ExtractAttributes never fails; it falls back to
	// domain.FallbackAttributes when Extract would.
	ExtractAttributes(ctx context.Context, imageRef string) domain.AttributeSet
}
