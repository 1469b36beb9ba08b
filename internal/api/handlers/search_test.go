package handlers_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/closette/internal/api/handlers"
	"github.com/donaldgifford/closette/internal/api/handlers/mocks"
	domain "github.com/donaldgifford/closette/pkg/types"
)

func TestSearchHandler_Search(t *testing.T) {
	t.Parallel()

	ebayItem := domain.ResultItem{
		Title:      "Floral dress",
		Price:      "24.99 GBP",
		ImageURL:   "https://i.ebayimg.com/1.jpg",
		ListingURL: "https://www.ebay.co.uk/itm/1",
		Platform:   domain.PlatformEbay,
		Condition:  "Pre-owned",
	}

	tests := []struct {
		name       string
		body       any
		setupMock  func(*mocks.MockSearcher)
		wantStatus int
		wantBody   []string
	}{
		{
			name: "text search returns envelope",
			body: map[string]any{"textInput": "floral dress"},
			setupMock: func(m *mocks.MockSearcher) {
				m.EXPECT().
					Search(mock.Anything, domain.SearchRequest{TextInput: "floral dress"}).
					Return(domain.NewSearchResponse("floral dress", nil,
						[]domain.ResultItem{ebayItem}), nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody: []string{
				`"success":true`,
				`"query":"floral dress"`,
				`"count":1`,
				`"platform":"eBay"`,
			},
		},
		{
			name: "image search returns attributes",
			body: map[string]any{"imageReference": "https://img/x.jpg"},
			setupMock: func(m *mocks.MockSearcher) {
				attrs := domain.FallbackAttributes()
				m.EXPECT().
					Search(mock.Anything, domain.SearchRequest{ImageReference: "https://img/x.jpg"}).
					Return(domain.NewSearchResponse(attrs.Query(), &attrs, nil), nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody: []string{
				`"query":"unknown unknown unknown vintage"`,
				`"attributes":{"color":"unknown"`,
				`"results":[]`,
				`"count":0`,
			},
		},
		{
			name: "imageUrl alias",
			body: map[string]any{"imageUrl": "https://img/y.jpg", "textInput": "boots"},
			setupMock: func(m *mocks.MockSearcher) {
				m.EXPECT().
					Search(mock.Anything, domain.SearchRequest{
						ImageReference: "https://img/y.jpg",
						TextInput:      "boots",
					}).
					Return(domain.NewSearchResponse("x", nil, nil), nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown fields are ignored",
			body:       map[string]any{"textInput": "hat", "page": 2},
			wantStatus: http.StatusOK,
			setupMock: func(m *mocks.MockSearcher) {
				m.EXPECT().
					Search(mock.Anything, domain.SearchRequest{TextInput: "hat"}).
					Return(domain.NewSearchResponse("hat", nil, nil), nil).
					Once()
			},
		},
		{
			name: "empty body returns 400",
			body: map[string]any{},
			setupMock: func(m *mocks.MockSearcher) {
				m.EXPECT().
					Search(mock.Anything, domain.SearchRequest{}).
					Return(nil, domain.ErrMissingQuerySource).
					Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"error":"provide imageReference or textInput"`},
		},
		{
			name:       "wrong field type returns 400",
			body:       map[string]any{"textInput": 42},
			setupMock:  func(_ *mocks.MockSearcher) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"error":`},
		},
		{
			name:       "invalid JSON returns 400",
			body:       strings.NewReader(`not json`),
			setupMock:  func(_ *mocks.MockSearcher) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"error":`},
		},
		{
			name: "unexpected error returns 500 with raw message",
			body: map[string]any{"textInput": "coat"},
			setupMock: func(m *mocks.MockSearcher) {
				m.EXPECT().
					Search(mock.Anything, mock.Anything).
					Return(nil, errors.New("nil pointer in merge")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`"error":"nil pointer in merge"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			searcher := mocks.NewMockSearcher(t)
			tt.setupMock(searcher)

			_, api := humatest.New(t)
			handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(searcher))

			resp := api.Post("/api/search", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			for _, want := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), want)
			}
		})
	}
}
