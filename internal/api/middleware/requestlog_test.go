package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLog_Fields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		reqID      string
		handler    echo.HandlerFunc
		wantFields []string
		wantErr    bool
	}{
		{
			name:   "search request gets a generated ID",
			method: http.MethodPost,
			path:   "/api/search",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]any{"success": true})
			},
			wantFields: []string{"level=INFO", "method=POST", "path=/api/search", "status=200", "duration_ms=", "request_id="},
		},
		{
			name:    "caller request ID is kept",
			method:  http.MethodGet,
			path:    "/api/providers",
			reqID:   "closet-42",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantFields: []string{
				"request_id=closet-42",
			},
		},
		{
			name:   "handler error is rendered before logging",
			method: http.MethodPost,
			path:   "/api/search",
			handler: func(echo.Context) error {
				return echo.NewHTTPError(http.StatusBadRequest, "provide imageReference or textInput")
			},
			wantFields: []string{"level=INFO", "status=400"},
			wantErr:    true,
		},
		{
			name:    "server error logs at warn",
			method:  http.MethodPost,
			path:    "/api/search",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusInternalServerError) },
			wantFields: []string{
				"level=WARN",
				"status=500",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.reqID != "" {
				req.Header.Set(requestIDHeader, tt.reqID)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := RequestLog(slog.New(slog.NewTextHandler(&buf, nil)))(tt.handler)(c)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			for _, field := range tt.wantFields {
				assert.Contains(t, buf.String(), field)
			}

			respID := rec.Header().Get(requestIDHeader)
			require.NotEmpty(t, respID)
			assert.Equal(t, respID, c.Get("request_id"))
			if tt.reqID != "" {
				assert.Equal(t, tt.reqID, respID)
			}
		})
	}
}

// TestRequestLog_Probes drives one middleware instance through a sequence
// of requests and checks which ones produce a log line.
func TestRequestLog_Probes(t *testing.T) {
	t.Parallel()

	type step struct {
		path    string
		status  int
		logged  bool
		wantMsg string
	}

	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "only the first healthy probe is logged",
			steps: []step{
				{path: "/healthz", status: http.StatusOK, logged: true, wantMsg: "status=200"},
				{path: "/healthz", status: http.StatusOK},
				{path: "/healthz", status: http.StatusOK},
			},
		},
		{
			name: "both probe paths share the first-success line",
			steps: []step{
				{path: "/health", status: http.StatusOK, logged: true, wantMsg: "path=/health "},
				{path: "/healthz", status: http.StatusOK},
			},
		},
		{
			name: "failing probes are always logged",
			steps: []step{
				{path: "/healthz", status: http.StatusServiceUnavailable, logged: true, wantMsg: "level=WARN"},
				{path: "/healthz", status: http.StatusServiceUnavailable, logged: true, wantMsg: "status=503"},
			},
		},
		{
			name: "failure after suppressed successes",
			steps: []step{
				{path: "/health", status: http.StatusOK, logged: true},
				{path: "/health", status: http.StatusOK},
				{path: "/health", status: http.StatusServiceUnavailable, logged: true, wantMsg: "level=WARN"},
			},
		},
		{
			name: "api paths are never suppressed",
			steps: []step{
				{path: "/api/search", status: http.StatusOK, logged: true},
				{path: "/api/search", status: http.StatusOK, logged: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			e := echo.New()
			mw := RequestLog(slog.New(slog.NewTextHandler(&buf, nil)))

			for i, s := range tt.steps {
				before := buf.Len()

				handler := mw(func(c echo.Context) error { return c.NoContent(s.status) })
				req := httptest.NewRequest(http.MethodGet, s.path, http.NoBody)
				require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))

				line := buf.String()[before:]
				if !s.logged {
					assert.Empty(t, line, "step %d should not log", i)
					continue
				}
				assert.Equal(t, 1, strings.Count(line, "\n"), "step %d should log one line", i)
				if s.wantMsg != "" {
					assert.Contains(t, line, s.wantMsg, "step %d", i)
				}
			}
		})
	}
}
