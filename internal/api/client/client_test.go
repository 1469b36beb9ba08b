package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/closette/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "error envelope",
			status:      http.StatusBadRequest,
			body:        `{"error":"provide imageReference or textInput"}`,
			wantMessage: "provide imageReference or textInput",
		},
		{
			name:        "plain body",
			status:      http.StatusBadGateway,
			body:        "upstream down\n",
			wantMessage: "upstream down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).Search(context.Background(), domain.SearchRequest{})
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestClient_Search(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/search", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req domain.SearchRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "corduroy skirt", req.TextInput)
		assert.Empty(t, req.ImageReference)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.NewSearchResponse(req.TextInput, nil, []domain.ResultItem{
			{Title: "Brown cord skirt", Price: "£25", Platform: domain.PlatformDepop},
		}))
	}))
	defer srv.Close()

	resp, err := New(srv.URL+"/").Search(context.Background(), domain.SearchRequest{TextInput: "corduroy skirt"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, domain.PlatformDepop, resp.Results[0].Platform)
}

func TestClient_Providers(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/providers", r.URL.Path)
		_, _ = w.Write([]byte(`{"providers":[
			{"platform":"Vinted","enabled":true,"stubbed":false,"resultCap":3,"priceFormat":"native","timeoutSeconds":10},
			{"platform":"Depop","enabled":true,"stubbed":true,"resultCap":1,"priceFormat":"£<amount>","timeoutSeconds":15}
		]}`))
	}))
	defer srv.Close()

	got, err := New(srv.URL).Providers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[1].Stubbed)
	assert.Equal(t, 15, got[1].TimeoutSeconds)
}

func TestClient_Health(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	status, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", status)
	assert.Equal(t, srv.URL, c.BaseURL())
}
