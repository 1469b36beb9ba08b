package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so host settings do not leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT",
		"OPENAI_API_KEY",
		"ANTHROPIC_API_KEY",
		"GEMINI_API_KEY",
		"EBAY_API_KEY",
		"LOBSTR_API_KEY",
		"SCRAPINGBEE_API_KEY",
		"OTEL_EXPORTER_OTLP_ENDPOINT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "empty file gets defaults",
			yaml: ``,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 3000, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 90*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, "50M", cfg.Server.BodyLimit)
				assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, BackendOpenAICompat, cfg.Vision.Backend)
				assert.Equal(t, "gpt-4o", cfg.Vision.OpenAICompat.Model)
				assert.Equal(t, "https://api.openai.com", cfg.Vision.OpenAICompat.Endpoint)
				assert.Equal(t, 60*time.Second, cfg.Vision.Timeout)
				assert.Equal(t, 500, cfg.Vision.MaxTokens)
				assert.Equal(t, 5, cfg.Providers.Ebay.Limit)
				assert.Equal(t, 15*time.Second, cfg.Providers.Ebay.Timeout)
				assert.Equal(t, "EBAY-GB", cfg.Providers.Ebay.GlobalID)
				assert.Equal(t, "GBP", cfg.Providers.Ebay.Currency)
				assert.InDelta(t, 5.0, cfg.Providers.Ebay.RateLimit, 0.001)
				assert.Equal(t, 5000, cfg.Providers.Ebay.DailyLimit)
				assert.Equal(t, 3, cfg.Providers.Vinted.Limit)
				assert.Equal(t, 10*time.Second, cfg.Providers.Vinted.Timeout)
				assert.Equal(t, 15*time.Second, cfg.Providers.Depop.Timeout)
				assert.True(t, *cfg.Providers.Ebay.Enabled)
				assert.True(t, *cfg.Providers.Vinted.Enabled)
				assert.True(t, *cfg.Providers.Depop.Enabled)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
				assert.Equal(t, "closette", cfg.Telemetry.ServiceName)
				assert.InDelta(t, 1.0, cfg.Telemetry.SampleRatio, 0.0001)
			},
		},
		{
			name: "env var substitution in YAML",
			yaml: `
vision:
  openai_compat:
    model: ${TEST_VISION_MODEL}
`,
			envVars: map[string]string{"TEST_VISION_MODEL": "gpt-4o-mini"},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "gpt-4o-mini", cfg.Vision.OpenAICompat.Model)
			},
		},
		{
			name: "well-known env vars override the file",
			yaml: `
server:
  port: 8080
providers:
  ebay:
    app_id: from-file
`,
			envVars: map[string]string{
				"PORT":                "4000",
				"OPENAI_API_KEY":      "sk-test",
				"EBAY_API_KEY":        "from-env",
				"LOBSTR_API_KEY":      "lobstr",
				"SCRAPINGBEE_API_KEY": "bee",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, 4000, cfg.Server.Port)
				assert.Equal(t, "sk-test", cfg.Vision.OpenAICompat.APIKey)
				assert.Equal(t, "from-env", cfg.Providers.Ebay.AppID)
				assert.Equal(t, "lobstr", cfg.Providers.Vinted.APIKey)
				assert.Equal(t, "bee", cfg.Providers.Depop.APIKey)
				assert.Empty(t, cfg.MissingKeys())
			},
		},
		{
			name: "provider can be disabled",
			yaml: `
providers:
  depop:
    enabled: false
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.False(t, *cfg.Providers.Depop.Enabled)
				assert.NotContains(t, cfg.MissingKeys(), "SCRAPINGBEE_API_KEY")
			},
		},
		{
			name:    "invalid PORT",
			yaml:    ``,
			envVars: map[string]string{"PORT": "abc"},
			wantErr: "parsing PORT",
		},
		{
			name: "invalid vision backend",
			yaml: `
vision:
  backend: invalid
`,
			wantErr: "vision.backend must be one of",
		},
		{
			name: "ollama without endpoint",
			yaml: `
vision:
  backend: ollama
`,
			wantErr: "vision.ollama.endpoint is required",
		},
		{
			name: "anthropic without model",
			yaml: `
vision:
  backend: anthropic
`,
			wantErr: "vision.anthropic.model is required",
		},
		{
			name: "telemetry without endpoint",
			yaml: `
telemetry:
  enabled: true
`,
			wantErr: "telemetry.endpoint is required",
		},
		{
			name: "port out of range",
			yaml: `
server:
  port: 70000
`,
			wantErr: "server.port must be between",
		},
		{
			name:    "invalid YAML",
			yaml:    "server: [",
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_NoFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOBSTR_API_KEY", "lobstr")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "lobstr", cfg.Providers.Vinted.APIKey)
	assert.ElementsMatch(t,
		[]string{"OPENAI_API_KEY", "EBAY_API_KEY", "SCRAPINGBEE_API_KEY"},
		cfg.MissingKeys(),
	)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestServerConfig_Addr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 3000}
	assert.Equal(t, "127.0.0.1:3000", s.Addr())
}
