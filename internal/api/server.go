// Package api assembles the closette HTTP server: echo router, middleware
// stack and the huma-registered operations.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/donaldgifford/closette/internal/api/handlers"
	mw "github.com/donaldgifford/closette/internal/api/middleware"
	"github.com/donaldgifford/closette/internal/config"
)

// Server is the closette HTTP server.
type Server struct {
	echo    *echo.Echo
	cfg     config.ServerConfig
	log     *slog.Logger
	version string
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger for request and error logging.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.log = l
	}
}

// WithVersion sets the version reported in the OpenAPI document.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.version = v
	}
}

// NewServer builds the router and registers every route.
func NewServer(cfg config.ServerConfig, searcher handlers.Searcher, opts ...Option) *Server {
	s := &Server{
		cfg:     cfg,
		log:     slog.Default(),
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.handleError
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	// RequestLog and Metrics sit outside Recovery so recovered panics are
	// still logged and counted as 500s.
	e.Use(mw.RequestLog(s.log))
	e.Use(mw.Metrics())
	e.Use(mw.Recovery(s.log))
	e.Use(echo.WrapMiddleware(func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, "closette",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderXRequestID},
	}))
	if cfg.BodyLimit != "" {
		e.Use(echomw.BodyLimit(cfg.BodyLimit))
	}

	e.GET("/health", handlers.Healthz)
	e.GET("/healthz", handlers.Healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaAPI := humaecho.New(e, huma.DefaultConfig("closette", s.version))
	handlers.RegisterSearchRoutes(humaAPI, handlers.NewSearchHandler(searcher))
	handlers.RegisterProviderRoutes(humaAPI, handlers.NewProvidersHandler(searcher))

	s.echo = e
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on the configured address and blocks until Shutdown.
func (s *Server) Start() error {
	s.log.Info("starting server", "addr", s.cfg.Addr())
	if err := s.echo.Start(s.cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving http: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

// handleError renders router-level errors (404, 405, 413, ...) with the
// same {"error": ...} envelope the operations use.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}

	if code >= http.StatusInternalServerError {
		s.log.Error("request failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err,
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, handlers.ErrorResponse{Error: msg})
	}
	if err != nil {
		s.log.Error("writing error response", "error", err)
	}
}
