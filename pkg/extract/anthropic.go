package extract

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultAnthropicURL     = "https://api.anthropic.com/v1/messages"
	defaultAnthropicModel   = "claude-sonnet-4-5"
	defaultAnthropicVersion = "2023-06-01"
)

// AnthropicBackend implements VisionBackend using the Anthropic Messages API.
type AnthropicBackend struct {
	apiKey     string
	model      string
	endpoint   string
	apiVersion string
	client     *http.Client
}

// AnthropicOption configures the AnthropicBackend.
type AnthropicOption func(*AnthropicBackend)

// WithAnthropicEndpoint overrides the default API endpoint.
func WithAnthropicEndpoint(url string) AnthropicOption {
	return func(b *AnthropicBackend) {
		b.endpoint = url
	}
}

// WithAnthropicModel overrides the default model.
func WithAnthropicModel(model string) AnthropicOption {
	return func(b *AnthropicBackend) {
		if model != "" {
			b.model = model
		}
	}
}

// WithAnthropicAPIKey overrides the API key (instead of reading from env).
func WithAnthropicAPIKey(key string) AnthropicOption {
	return func(b *AnthropicBackend) {
		b.apiKey = key
	}
}

// WithAnthropicHTTPClient overrides the default HTTP client.
func WithAnthropicHTTPClient(c *http.Client) AnthropicOption {
	return func(b *AnthropicBackend) {
		b.client = c
	}
}

// NewAnthropicBackend creates a new Anthropic Claude API backend.
// The API key is read from the ANTHROPIC_API_KEY environment variable
// if not provided via options.
func NewAnthropicBackend(opts ...AnthropicOption) *AnthropicBackend {
	b := &AnthropicBackend{
		apiKey:     os.Getenv("ANTHROPIC_API_KEY"),
		model:      defaultAnthropicModel,
		endpoint:   defaultAnthropicURL,
		apiVersion: defaultAnthropicVersion,
		client:     &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (*AnthropicBackend) Name() string {
	return "anthropic"
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string             `json:"role"`
	Content []anthropicContent `json:"content"`
}

type anthropicContent struct {
	Type   string           `json:"type"`
	Text   string           `json:"text,omitempty"`
	Source *anthropicSource `json:"source,omitempty"`
}

type anthropicSource struct {
	Type      string `json:"type"` // url or base64
	URL       string `json:"url,omitempty"`
	MediaType string `json:"media_type,omitempty"`
	Data      string `json:"data,omitempty"`
}

type anthropicResponse struct {
	Content []anthropicContent `json:"content"`
	Model   string             `json:"model"`
	Usage   anthropicUsage     `json:"usage"`
}

type anthropicUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type anthropicError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// anthropicErrorDetail renders the Messages API error envelope as
// "type: message".
func anthropicErrorDetail(body []byte) string {
	var apiErr anthropicError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error.Message == "" {
		return ""
	}
	return apiErr.Error.Type + ": " + apiErr.Error.Message
}

// imageSource maps an image reference onto a Messages API image source.
// Data URIs are sent inline; anything else is passed by URL.
func imageSource(ref string) (*anthropicSource, error) {
	if !strings.HasPrefix(ref, "data:") {
		return &anthropicSource{Type: "url", URL: ref}, nil
	}
	img, err := ParseDataURI(ref)
	if err != nil {
		return nil, err
	}
	return &anthropicSource{
		Type:      "base64",
		MediaType: img.MIMEType,
		Data:      base64.StdEncoding.EncodeToString(img.Data),
	}, nil
}

// Generate calls the Anthropic Messages API.
func (b *AnthropicBackend) Generate(
	ctx context.Context,
	req VisionRequest,
) (GenerateResponse, error) {
	if b.apiKey == "" {
		return GenerateResponse{}, fmt.Errorf("ANTHROPIC_API_KEY is not set")
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 500
	}

	src, err := imageSource(req.ImageURL)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("preparing image: %w", err)
	}

	anthropicReq := anthropicRequest{
		Model:     b.model,
		MaxTokens: maxTokens,
		Messages: []anthropicMessage{{
			Role: "user",
			Content: []anthropicContent{
				{Type: "image", Source: src},
				{Type: "text", Text: req.Prompt},
			},
		}},
	}

	var apiResp anthropicResponse
	err = postJSON(ctx, b.client, "anthropic API", b.endpoint,
		http.Header{
			"x-api-key":         {b.apiKey},
			"anthropic-version": {b.apiVersion},
		},
		anthropicReq, &apiResp, anthropicErrorDetail,
	)
	if err != nil {
		return GenerateResponse{}, err
	}

	var text strings.Builder
	for _, c := range apiResp.Content {
		if c.Type == "text" {
			text.WriteString(c.Text)
		}
	}
	if text.Len() == 0 {
		return GenerateResponse{}, fmt.Errorf("empty response from anthropic")
	}

	return GenerateResponse{
		Content: text.String(),
		Model:   apiResp.Model,
		Usage: TokenUsage{
			PromptTokens:     apiResp.Usage.InputTokens,
			CompletionTokens: apiResp.Usage.OutputTokens,
			TotalTokens:      apiResp.Usage.InputTokens + apiResp.Usage.OutputTokens,
		},
	}, nil
}
