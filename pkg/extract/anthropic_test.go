package extract_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/closette/pkg/extract"
)

func TestAnthropicBackend_Name(t *testing.T) {
	t.Parallel()
	b := extract.NewAnthropicBackend()
	assert.Equal(t, "anthropic", b.Name())
}

// sourceOf decodes the image source from a captured Messages API body.
func sourceOf(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body struct {
		Messages []struct {
			Content []map[string]any `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil ||
		len(body.Messages) == 0 || len(body.Messages[0].Content) == 0 {
		t.Errorf("unexpected request body: %v", err)
		return nil
	}
	src, _ := body.Messages[0].Content[0]["source"].(map[string]any)
	return src
}

func TestAnthropicBackend_Generate(t *testing.T) {
	t.Parallel()

	successResponse := `{
		"content": [{"type": "text", "text": "{\"color\":\"blue\"}"}],
		"model": "claude-sonnet-4-5",
		"usage": {"input_tokens": 10, "output_tokens": 4}
	}`

	tests := []struct {
		name       string
		apiKey     string
		handler    http.HandlerFunc
		req        extract.VisionRequest
		wantErr    bool
		wantErrMsg string
		wantResp   string
		wantUsage  int
	}{
		{
			name:   "successful generation with url source",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
				assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
				src := sourceOf(t, r)
				assert.Equal(t, "url", src["type"])
				assert.Equal(t, "https://img.example.com/jacket.jpg", src["url"])
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(successResponse))
			},
			req: extract.VisionRequest{
				Prompt:    "describe",
				ImageURL:  "https://img.example.com/jacket.jpg",
				MaxTokens: 500,
			},
			wantResp:  `{"color":"blue"}`,
			wantUsage: 14,
		},
		{
			name:   "data URI sent as base64 source",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				src := sourceOf(t, r)
				assert.Equal(t, "base64", src["type"])
				assert.Equal(t, "image/png", src["media_type"])
				assert.Equal(t, "aGVsbG8=", src["data"])
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(successResponse))
			},
			req: extract.VisionRequest{
				Prompt:   "describe",
				ImageURL: "data:image/png;base64,aGVsbG8=",
			},
			wantResp: `{"color":"blue"}`,
		},
		{
			name:       "missing API key",
			apiKey:     "",
			handler:    func(_ http.ResponseWriter, _ *http.Request) {},
			req:        extract.VisionRequest{Prompt: "describe"},
			wantErr:    true,
			wantErrMsg: "ANTHROPIC_API_KEY",
		},
		{
			name:       "malformed data URI",
			apiKey:     "test-key",
			handler:    func(_ http.ResponseWriter, _ *http.Request) {},
			req:        extract.VisionRequest{Prompt: "describe", ImageURL: "data:image/png,raw"},
			wantErr:    true,
			wantErrMsg: "preparing image",
		},
		{
			name:   "rate limited 429",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{
					"error": {"type": "rate_limit_error", "message": "rate limit exceeded"}
				}`))
			},
			req:        extract.VisionRequest{Prompt: "describe", ImageURL: "https://x/y.jpg"},
			wantErr:    true,
			wantErrMsg: "rate_limit_error",
		},
		{
			name:   "invalid JSON response",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`not json`))
			},
			req:        extract.VisionRequest{Prompt: "describe", ImageURL: "https://x/y.jpg"},
			wantErr:    true,
			wantErrMsg: "parsing anthropic",
		},
		{
			name:   "empty content array",
			apiKey: "test-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"content":[],"model":"test","usage":{}}`))
			},
			req:        extract.VisionRequest{Prompt: "describe", ImageURL: "https://x/y.jpg"},
			wantErr:    true,
			wantErrMsg: "empty response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			backend := extract.NewAnthropicBackend(
				extract.WithAnthropicEndpoint(srv.URL),
				extract.WithAnthropicHTTPClient(srv.Client()),
				extract.WithAnthropicAPIKey(tt.apiKey),
			)

			resp, err := backend.Generate(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantResp, resp.Content)
			if tt.wantUsage > 0 {
				assert.Equal(t, tt.wantUsage, resp.Usage.TotalTokens)
			}
		})
	}
}
