// Package config handles loading and validating the application configuration
// from an optional YAML file, environment variable substitution, and the
// well-known provider API key variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	domain "github.com/donaldgifford/closette/pkg/types"
)

// Vision backend names.
const (
	BackendOpenAICompat = "openai_compat"
	BackendAnthropic    = "anthropic"
	BackendOllama       = "ollama"
	BackendGemini       = "gemini"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Vision    VisionConfig    `yaml:"vision"`
	Providers ProvidersConfig `yaml:"providers"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	BodyLimit      string        `yaml:"body_limit"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

// Addr returns the host:port listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// VisionConfig defines the image attribute extraction backend.
type VisionConfig struct {
	Backend      string             `yaml:"backend"` // openai_compat, anthropic, ollama, gemini
	OpenAICompat OpenAICompatConfig `yaml:"openai_compat"`
	Anthropic    AnthropicConfig    `yaml:"anthropic"`
	Ollama       OllamaConfig       `yaml:"ollama"`
	Gemini       GeminiConfig       `yaml:"gemini"`
	Timeout      time.Duration      `yaml:"timeout"`
	MaxTokens    int                `yaml:"max_tokens"`
	MaxImageSize int64              `yaml:"max_image_bytes"`
}

// OpenAICompatConfig defines OpenAI-compatible endpoint settings.
type OpenAICompatConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
}

// AnthropicConfig defines Anthropic API settings.
type AnthropicConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"api_key"`
}

// OllamaConfig defines Ollama-specific settings.
type OllamaConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// GeminiConfig defines Google Gemini API settings.
type GeminiConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"api_key"`
}

// ProvidersConfig groups the marketplace adapters.
type ProvidersConfig struct {
	Ebay   EbayConfig   `yaml:"ebay"`
	Vinted VintedConfig `yaml:"vinted"`
	Depop  DepopConfig  `yaml:"depop"`
}

// EbayConfig defines eBay Finding API settings.
type EbayConfig struct {
	Enabled     *bool         `yaml:"enabled"`
	AppID       string        `yaml:"app_id"`
	FindingURL  string        `yaml:"finding_url"`
	GlobalID    string        `yaml:"global_id"`
	Currency    string        `yaml:"currency"`
	Limit       int           `yaml:"limit"`
	Timeout     time.Duration `yaml:"timeout"`
	SortOrder   string        `yaml:"sort_order"`
	OutputField string        `yaml:"output_selector"`
	RateLimit   float64       `yaml:"rate_limit"`
	RateBurst   int           `yaml:"rate_burst"`
	DailyLimit  int           `yaml:"daily_limit"`
}

// VintedConfig defines Lobstr item-search broker settings.
type VintedConfig struct {
	Enabled   *bool         `yaml:"enabled"`
	APIKey    string        `yaml:"api_key"`
	SearchURL string        `yaml:"search_url"`
	ItemURL   string        `yaml:"item_url"`
	Limit     int           `yaml:"limit"`
	Timeout   time.Duration `yaml:"timeout"`
}

// DepopConfig defines ScrapingBee rendering proxy settings.
type DepopConfig struct {
	Enabled          *bool         `yaml:"enabled"`
	APIKey           string        `yaml:"api_key"`
	ProxyURL         string        `yaml:"proxy_url"`
	SearchURL        string        `yaml:"search_url"`
	RenderJavaScript bool          `yaml:"render_javascript"`
	Timeout          time.Duration `yaml:"timeout"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, console
}

// TelemetryConfig defines OpenTelemetry tracing settings.
type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// Load reads an optional YAML config file, performs environment variable
// substitution, overlays the well-known environment variables, applies
// defaults and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		// Expand environment variables in the YAML content.
		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// applyEnv overlays the process environment. Keys set in the environment
// win over the file so deployments can keep secrets out of YAML.
func applyEnv(cfg *Config) error {
	setFromEnv(&cfg.Vision.OpenAICompat.APIKey, "OPENAI_API_KEY")
	setFromEnv(&cfg.Vision.Anthropic.APIKey, "ANTHROPIC_API_KEY")
	setFromEnv(&cfg.Vision.Gemini.APIKey, "GEMINI_API_KEY")
	setFromEnv(&cfg.Providers.Ebay.AppID, "EBAY_API_KEY")
	setFromEnv(&cfg.Providers.Vinted.APIKey, "LOBSTR_API_KEY")
	setFromEnv(&cfg.Providers.Depop.APIKey, "SCRAPINGBEE_API_KEY")
	setFromEnv(&cfg.Telemetry.Endpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	return nil
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyVisionDefaults(&cfg.Vision)
	applyEbayDefaults(&cfg.Providers.Ebay)
	applyVintedDefaults(&cfg.Providers.Vinted)
	applyDepopDefaults(&cfg.Providers.Depop)
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 3000
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	// Image analysis alone may take up to a minute.
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 90 * time.Second
	}
	if s.BodyLimit == "" {
		s.BodyLimit = "50M"
	}
	if len(s.AllowedOrigins) == 0 {
		s.AllowedOrigins = []string{"*"}
	}
}

func applyVisionDefaults(v *VisionConfig) {
	if v.Backend == "" {
		v.Backend = BackendOpenAICompat
	}
	if v.OpenAICompat.Endpoint == "" {
		v.OpenAICompat.Endpoint = "https://api.openai.com"
	}
	if v.OpenAICompat.Model == "" {
		v.OpenAICompat.Model = "gpt-4o"
	}
	if v.Ollama.Model == "" {
		v.Ollama.Model = "llava"
	}
	if v.Gemini.Model == "" {
		v.Gemini.Model = "gemini-2.5-flash"
	}
	if v.Timeout == 0 {
		v.Timeout = 60 * time.Second
	}
	if v.MaxTokens == 0 {
		v.MaxTokens = 500
	}
	if v.MaxImageSize == 0 {
		v.MaxImageSize = 20 << 20
	}
}

func applyEbayDefaults(e *EbayConfig) {
	if e.Enabled == nil {
		e.Enabled = boolPtr(true)
	}
	if e.FindingURL == "" {
		e.FindingURL = "https://svcs.ebay.com/services/search/FindingService/v1"
	}
	if e.GlobalID == "" {
		e.GlobalID = "EBAY-GB"
	}
	if e.Currency == "" {
		e.Currency = "GBP"
	}
	if e.Limit == 0 {
		e.Limit = 5
	}
	if e.Timeout == 0 {
		e.Timeout = 15 * time.Second
	}
	if e.SortOrder == "" {
		e.SortOrder = "PricePlusShippingLowest"
	}
	if e.OutputField == "" {
		e.OutputField = "SellerInfo"
	}
	if e.RateLimit == 0 {
		e.RateLimit = 5
	}
	if e.RateBurst == 0 {
		e.RateBurst = 5
	}
	if e.DailyLimit == 0 {
		e.DailyLimit = domain.EbayDailyCalls
	}
}

func applyVintedDefaults(v *VintedConfig) {
	if v.Enabled == nil {
		v.Enabled = boolPtr(true)
	}
	if v.SearchURL == "" {
		v.SearchURL = "https://api.lobstr.io/v1/items/search"
	}
	if v.ItemURL == "" {
		v.ItemURL = "https://www.vinted.com/items/"
	}
	if v.Limit == 0 {
		v.Limit = 3
	}
	if v.Timeout == 0 {
		v.Timeout = 10 * time.Second
	}
}

func applyDepopDefaults(d *DepopConfig) {
	if d.Enabled == nil {
		d.Enabled = boolPtr(true)
	}
	if d.ProxyURL == "" {
		d.ProxyURL = "https://api.scrapingbee.com/api/v1"
	}
	if d.SearchURL == "" {
		d.SearchURL = "https://www.depop.com/search/"
	}
	if d.Timeout == 0 {
		d.Timeout = 15 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "closette"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535 (got %d)", cfg.Server.Port))
	}

	switch cfg.Vision.Backend {
	case BackendOpenAICompat, BackendGemini:
	case BackendAnthropic:
		if cfg.Vision.Anthropic.Model == "" {
			errs = append(
				errs,
				fmt.Errorf("vision.anthropic.model is required when backend is anthropic"),
			)
		}
	case BackendOllama:
		if cfg.Vision.Ollama.Endpoint == "" {
			errs = append(
				errs,
				fmt.Errorf("vision.ollama.endpoint is required when backend is ollama"),
			)
		}
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"vision.backend must be one of: openai_compat, anthropic, ollama, gemini (got %q)",
				cfg.Vision.Backend,
			),
		)
	}

	if cfg.Vision.Timeout < 0 {
		errs = append(errs, fmt.Errorf("vision.timeout must not be negative"))
	}
	if cfg.Providers.Ebay.Limit < 1 {
		errs = append(errs, fmt.Errorf("providers.ebay.limit must be positive"))
	}
	if cfg.Providers.Ebay.RateLimit < 0 || cfg.Providers.Ebay.DailyLimit < 0 {
		errs = append(errs, fmt.Errorf("providers.ebay rate_limit and daily_limit must not be negative"))
	}
	if cfg.Providers.Vinted.Limit < 1 {
		errs = append(errs, fmt.Errorf("providers.vinted.limit must be positive"))
	}
	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint == "" {
		errs = append(errs, fmt.Errorf("telemetry.endpoint is required when telemetry is enabled"))
	}
	if cfg.Telemetry.SampleRatio < 0 || cfg.Telemetry.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("telemetry.sample_ratio must be within [0, 1]"))
	}

	return errors.Join(errs...)
}

// MissingKeys lists the credentials that are not configured for enabled
// components. Missing keys are not fatal: the affected component degrades.
func (c *Config) MissingKeys() []string {
	var missing []string

	switch c.Vision.Backend {
	case BackendOpenAICompat:
		if c.Vision.OpenAICompat.APIKey == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
	case BackendAnthropic:
		if c.Vision.Anthropic.APIKey == "" {
			missing = append(missing, "ANTHROPIC_API_KEY")
		}
	case BackendGemini:
		if c.Vision.Gemini.APIKey == "" {
			missing = append(missing, "GEMINI_API_KEY")
		}
	}

	if *c.Providers.Ebay.Enabled && c.Providers.Ebay.AppID == "" {
		missing = append(missing, "EBAY_API_KEY")
	}
	if *c.Providers.Vinted.Enabled && c.Providers.Vinted.APIKey == "" {
		missing = append(missing, "LOBSTR_API_KEY")
	}
	if *c.Providers.Depop.Enabled && c.Providers.Depop.APIKey == "" {
		missing = append(missing, "SCRAPINGBEE_API_KEY")
	}

	return missing
}
