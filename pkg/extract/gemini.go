package extract

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiBackend implements VisionBackend using Google's Gemini API. The
// image is fetched first and sent inline.
type GeminiBackend struct {
	client     *genai.Client
	model      string
	apiKey     string
	baseURL    string
	httpClient *http.Client
	loader     *ImageLoader
}

// GeminiOption configures the GeminiBackend.
type GeminiOption func(*GeminiBackend)

// WithGeminiAPIKey overrides the API key (instead of reading from env).
func WithGeminiAPIKey(key string) GeminiOption {
	return func(b *GeminiBackend) {
		b.apiKey = key
	}
}

// WithGeminiModel overrides the default model.
func WithGeminiModel(model string) GeminiOption {
	return func(b *GeminiBackend) {
		if model != "" {
			b.model = model
		}
	}
}

// WithGeminiBaseURL points the client at a different API host.
func WithGeminiBaseURL(url string) GeminiOption {
	return func(b *GeminiBackend) {
		b.baseURL = url
	}
}

// WithGeminiHTTPClient overrides the default HTTP client.
func WithGeminiHTTPClient(c *http.Client) GeminiOption {
	return func(b *GeminiBackend) {
		b.httpClient = c
	}
}

// WithGeminiImageLoader overrides how images are fetched before inlining.
func WithGeminiImageLoader(l *ImageLoader) GeminiOption {
	return func(b *GeminiBackend) {
		b.loader = l
	}
}

// NewGeminiBackend creates a new Gemini backend. The API key is read from
// GEMINI_API_KEY if not provided via options. Without a key the backend is
// still constructed and every Generate call fails.
func NewGeminiBackend(ctx context.Context, opts ...GeminiOption) (*GeminiBackend, error) {
	b := &GeminiBackend{
		model:      defaultGeminiModel,
		apiKey:     os.Getenv("GEMINI_API_KEY"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		loader:     NewImageLoader(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.apiKey == "" {
		return b, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      b.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  b.httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: b.baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	b.client = client

	return b, nil
}

// Name returns the backend name.
func (*GeminiBackend) Name() string {
	return "gemini"
}

// Generate sends the prompt and inline image to GenerateContent.
func (b *GeminiBackend) Generate(
	ctx context.Context,
	req VisionRequest,
) (GenerateResponse, error) {
	if b.client == nil {
		return GenerateResponse{}, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	img, err := b.loader.Load(ctx, req.ImageURL)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("loading image: %w", err)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(req.Prompt),
		{InlineData: &genai.Blob{Data: img.Data, MIMEType: img.MIMEType}},
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{}
	if req.Format == FormatJSON {
		config.ResponseMIMEType = "application/json"
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens) //nolint:gosec // small configured value
	}

	result, err := b.client.Models.GenerateContent(ctx, b.model, contents, config)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("calling gemini API: %w", err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return GenerateResponse{}, fmt.Errorf("empty response from gemini")
	}

	resp := GenerateResponse{
		Content: result.Text(),
		Model:   b.model,
	}
	if result.UsageMetadata != nil {
		resp.Usage = TokenUsage{
			PromptTokens:     int(result.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(result.UsageMetadata.TotalTokenCount),
		}
	}

	return resp, nil
}
