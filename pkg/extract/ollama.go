package extract

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"
)

// OllamaBackend implements VisionBackend using the Ollama /api/generate
// endpoint with a multimodal model such as llava.
type OllamaBackend struct {
	endpoint string
	model    string
	client   *http.Client
	loader   *ImageLoader
}

// OllamaOption configures the OllamaBackend.
type OllamaOption func(*OllamaBackend)

// WithOllamaHTTPClient overrides the default HTTP client.
func WithOllamaHTTPClient(c *http.Client) OllamaOption {
	return func(b *OllamaBackend) {
		b.client = c
	}
}

// WithOllamaImageLoader overrides how images are fetched before inlining.
func WithOllamaImageLoader(l *ImageLoader) OllamaOption {
	return func(b *OllamaBackend) {
		b.loader = l
	}
}

// NewOllamaBackend creates a new Ollama vision backend.
func NewOllamaBackend(endpoint, model string, opts ...OllamaOption) *OllamaBackend {
	b := &OllamaBackend{
		endpoint: endpoint,
		model:    model,
		client:   &http.Client{Timeout: 60 * time.Second},
		loader:   NewImageLoader(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (*OllamaBackend) Name() string {
	return "ollama"
}

type ollamaRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Images  []string       `json:"images"`
	Format  string         `json:"format,omitempty"`
	Stream  bool           `json:"stream"`
	Options *ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	NumPredict int `json:"num_predict,omitempty"`
}

type ollamaResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
}

// Generate calls the Ollama /api/generate endpoint.
func (b *OllamaBackend) Generate(
	ctx context.Context,
	req VisionRequest,
) (GenerateResponse, error) {
	img, err := b.loader.Load(ctx, req.ImageURL)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("loading image: %w", err)
	}

	ollamaReq := ollamaRequest{
		Model:  b.model,
		Prompt: req.Prompt,
		Images: []string{base64.StdEncoding.EncodeToString(img.Data)},
		Stream: false,
	}

	if req.Format == FormatJSON {
		ollamaReq.Format = FormatJSON
	}

	if req.MaxTokens > 0 {
		ollamaReq.Options = &ollamaOptions{NumPredict: req.MaxTokens}
	}

	var ollamaResp ollamaResponse
	if err := postJSON(ctx, b.client, "ollama", b.endpoint+"/api/generate", nil, ollamaReq, &ollamaResp, nil); err != nil {
		return GenerateResponse{}, err
	}

	return GenerateResponse{
		Content: ollamaResp.Response,
		Model:   ollamaResp.Model,
		Usage: TokenUsage{
			PromptTokens:     ollamaResp.PromptEvalCount,
			CompletionTokens: ollamaResp.EvalCount,
			TotalTokens:      ollamaResp.PromptEvalCount + ollamaResp.EvalCount,
		},
	}, nil
}
