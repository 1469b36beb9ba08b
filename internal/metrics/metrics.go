// Package metrics defines Prometheus metrics for closette.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "closette"

// Provider outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "health_up",
		Help:      "1 if the last health probe succeeded, 0 otherwise.",
	})
)

// Search metrics.
var (
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of searches by query source (text or image).",
	}, []string{"source"})

	SearchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_results",
		Help:      "Number of merged results returned per search.",
		Buckets:   prometheus.LinearBuckets(0, 2, 8), // 0, 2, 4, ..., 14
	})
)

// Provider metrics.
var (
	ProviderRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_requests_total",
		Help:      "Total number of marketplace provider calls by outcome.",
	}, []string{"platform", "outcome"})

	ProviderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "provider_duration_seconds",
		Help:      "Duration of marketplace provider calls in seconds.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15, 30},
	}, []string{"platform"})

	ProviderResultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_results_total",
		Help:      "Total number of results contributed by each provider.",
	}, []string{"platform"})

	ProviderQuotaRemaining = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "provider_quota_remaining",
		Help:      "Calls left in the provider's current daily quota window.",
	}, []string{"platform"})
)

// Extraction metrics.
var (
	ExtractionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "extraction_duration_seconds",
		Help:      "Duration of vision attribute extraction calls in seconds.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
	})

	ExtractionFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extraction_fallbacks_total",
		Help:      "Total number of extractions that fell back to the default attribute set.",
	})
)
