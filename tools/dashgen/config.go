package main

import "errors"

// KnownMetrics is the set of metric names exported by closette plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"closette_http_request_duration_seconds": true,
	"closette_http_requests_total":           true,

	// Health metrics.
	"closette_health_up": true,

	// Search metrics.
	"closette_searches_total": true,
	"closette_search_results": true,

	// Provider metrics.
	"closette_provider_requests_total":   true,
	"closette_provider_duration_seconds": true,
	"closette_provider_results_total":    true,
	"closette_provider_quota_remaining":  true,

	// Extraction metrics.
	"closette_extraction_duration_seconds": true,
	"closette_extraction_fallbacks_total":  true,

	// Recording rules.
	"closette:http_requests:rate5m":        true,
	"closette:http_errors:rate5m":          true,
	"closette:searches:rate5m":             true,
	"closette:provider_requests:rate5m":    true,
	"closette:provider_errors:rate5m":      true,
	"closette:extraction_fallbacks:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
