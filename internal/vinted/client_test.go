package vinted_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/closette/internal/vinted"
	domain "github.com/donaldgifford/closette/pkg/types"
)

const fourItems = `{
	"items": [
		{"id": 101, "title": "Floral Wrap Dress", "price": "£12.00",
		 "photos": [{"url": "https://images.vinted.net/101.jpg"}], "status": "Very good"},
		{"id": "102", "title": "Red Silk Blouse", "price": {"amount": "18.50", "currency_code": "GBP"},
		 "photos": [], "status": "Good"},
		{"id": 103, "title": "", "price": 5},
		{"id": 104, "title": "Cotton Sundress", "price": 9.5, "status": "New with tags"},
		{"id": 105, "title": "Over cap", "price": 1}
	]
}`

func TestClient_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		apiKey     string
		handler    http.HandlerFunc
		wantErr    bool
		errContain string
		errIs      error
		want       []domain.ResultItem
	}{
		{
			name:   "maps items and caps at three",
			apiKey: "lobstr-key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "lobstr-key", r.Header.Get("X-API-Key"))
				assert.Equal(t, "red floral dress", r.URL.Query().Get("search_text"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(fourItems))
			},
			want: []domain.ResultItem{
				{
					Title:      "Floral Wrap Dress",
					Price:      "£12.00",
					ImageURL:   "https://images.vinted.net/101.jpg",
					ListingURL: "https://www.vinted.com/items/101",
					Platform:   domain.PlatformVinted,
					Condition:  "Very good",
				},
				{
					Title:      "Red Silk Blouse",
					Price:      "18.50 GBP",
					ListingURL: "https://www.vinted.com/items/102",
					Platform:   domain.PlatformVinted,
					Condition:  "Good",
				},
				{
					Title:      "Cotton Sundress",
					Price:      "9.5",
					ListingURL: "https://www.vinted.com/items/104",
					Platform:   domain.PlatformVinted,
					Condition:  "New with tags",
				},
			},
		},
		{
			name:   "missing items key",
			apiKey: "lobstr-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
			want: []domain.ResultItem{},
		},
		{
			name:   "401 response",
			apiKey: "bad",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"detail":"invalid key"}`))
			},
			wantErr:    true,
			errContain: "status: 401",
		},
		{
			name:   "malformed JSON",
			apiKey: "lobstr-key",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			},
			wantErr:    true,
			errContain: "parsing search response",
		},
		{
			name:    "missing api key",
			handler: func(http.ResponseWriter, *http.Request) { t.Error("unexpected call") },
			wantErr: true,
			errIs:   domain.ErrMissingAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := vinted.NewClient(tt.apiKey,
				vinted.WithSearchURL(srv.URL+"/v1/items/search"),
				vinted.WithTransport(http.DefaultTransport),
			)

			got, err := client.Search(context.Background(), "red floral dress")

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContain != "" {
					assert.Contains(t, err.Error(), tt.errContain)
				}
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Search_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(fourItems))
	}))
	defer srv.Close()

	client := vinted.NewClient("key",
		vinted.WithSearchURL(srv.URL),
		vinted.WithTimeout(50*time.Millisecond),
	)

	_, err := client.Search(context.Background(), "dress")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "searching items")
}

func TestClient_Info(t *testing.T) {
	t.Parallel()

	c := vinted.NewClient("key", vinted.WithLimit(4))
	info := c.Info()

	assert.Equal(t, domain.PlatformVinted, c.Platform())
	assert.Equal(t, domain.PlatformVinted, info.Platform)
	assert.False(t, info.Stubbed)
	assert.Equal(t, 4, info.ResultCap)
	assert.Equal(t, 10, info.TimeoutSeconds())
}
