// Package middleware provides Echo middleware for the closette API.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/closette/internal/metrics"
)

// Metrics returns Echo middleware that records duration and status for API
// routes. Scrapes of /metrics are not recorded; health probes only move the
// health gauge.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			observe(c, time.Since(start))
			return err
		}
	}
}

func observe(c echo.Context, elapsed time.Duration) {
	route := c.Path()
	if route == "" {
		route = c.Request().URL.Path
	}
	status := c.Response().Status

	switch route {
	case "/metrics":
		return
	case "/health", "/healthz":
		if status >= 200 && status < 300 {
			metrics.HealthUp.Set(1)
		} else {
			metrics.HealthUp.Set(0)
		}
		return
	}

	labels := prometheus.Labels{
		"method": c.Request().Method,
		"path":   route,
		"status": strconv.Itoa(status),
	}
	metrics.HTTPRequestDuration.With(labels).Observe(elapsed.Seconds())
	metrics.HTTPRequestsTotal.With(labels).Inc()
}
