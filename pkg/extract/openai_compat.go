package extract

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"
)

// OpenAICompatBackend implements VisionBackend using the OpenAI chat
// completions API with an image_url content part. Any server that speaks
// the same protocol (vLLM, LM Studio, ...) works.
type OpenAICompatBackend struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

// OpenAICompatOption configures the OpenAICompatBackend.
type OpenAICompatOption func(*OpenAICompatBackend)

// WithOpenAICompatHTTPClient overrides the default HTTP client.
func WithOpenAICompatHTTPClient(c *http.Client) OpenAICompatOption {
	return func(b *OpenAICompatBackend) {
		b.client = c
	}
}

// WithOpenAICompatAPIKey sets the API key.
func WithOpenAICompatAPIKey(key string) OpenAICompatOption {
	return func(b *OpenAICompatBackend) {
		b.apiKey = key
	}
}

// NewOpenAICompatBackend creates a new OpenAI-compatible backend.
func NewOpenAICompatBackend(
	endpoint, model string,
	opts ...OpenAICompatOption,
) *OpenAICompatBackend {
	b := &OpenAICompatBackend{
		endpoint: endpoint,
		model:    model,
		apiKey:   os.Getenv("OPENAI_API_KEY"),
		client:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (*OpenAICompatBackend) Name() string {
	return "openai_compat"
}

type openAIChatRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	ResponseFmt *openAIRespFmt  `json:"response_format,omitempty"`
}

type openAIMessage struct {
	Role    string          `json:"role"`
	Content []openAIContent `json:"content"`
}

type openAIContent struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	ImageURL *openAIImageURL `json:"image_url,omitempty"`
}

type openAIImageURL struct {
	URL string `json:"url"`
}

type openAIRespFmt struct {
	Type string `json:"type"`
}

type openAIChatResponse struct {
	Choices []openAIChoice `json:"choices"`
	Model   string         `json:"model"`
	Usage   openAIUsage    `json:"usage"`
}

type openAIChoice struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
}

type openAIUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Generate calls the OpenAI-compatible /v1/chat/completions endpoint.
func (b *OpenAICompatBackend) Generate(
	ctx context.Context,
	req VisionRequest,
) (GenerateResponse, error) {
	if b.apiKey == "" {
		return GenerateResponse{}, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	chatReq := openAIChatRequest{
		Model: b.model,
		Messages: []openAIMessage{{
			Role: "user",
			Content: []openAIContent{
				{Type: "text", Text: req.Prompt},
				{Type: "image_url", ImageURL: &openAIImageURL{URL: req.ImageURL}},
			},
		}},
		MaxTokens: req.MaxTokens,
	}

	if req.Format == FormatJSON {
		chatReq.ResponseFmt = &openAIRespFmt{Type: "json_object"}
	}

	var chatResp openAIChatResponse
	err := postJSON(ctx, b.client, "openai-compatible API", b.endpoint+"/v1/chat/completions",
		http.Header{"Authorization": {"Bearer " + b.apiKey}},
		chatReq, &chatResp, nil,
	)
	if err != nil {
		return GenerateResponse{}, err
	}

	if len(chatResp.Choices) == 0 {
		return GenerateResponse{}, fmt.Errorf("empty choices from openai-compatible API")
	}

	return GenerateResponse{
		Content: chatResp.Choices[0].Message.Content,
		Model:   chatResp.Model,
		Usage: TokenUsage{
			PromptTokens:     chatResp.Usage.PromptTokens,
			CompletionTokens: chatResp.Usage.CompletionTokens,
			TotalTokens:      chatResp.Usage.TotalTokens,
		},
	}, nil
}
