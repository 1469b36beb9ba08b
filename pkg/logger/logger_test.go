package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/closette/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "DEBUG", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: " Warning ", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "", want: slog.LevelInfo},
		{input: "trace", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logger.ParseLevel(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()
	require.NotNil(t, logger.New("info", logger.FormatText))
}

func TestNewWithWriter_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		check  func(t *testing.T, out string)
	}{
		{
			name:   "text",
			format: logger.FormatText,
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.Contains(t, out, "level=WARN")
				assert.Contains(t, out, "platform=Vinted")
			},
		},
		{
			name:   "json",
			format: logger.FormatJSON,
			check: func(t *testing.T, out string) {
				t.Helper()
				var entry map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &entry))
				assert.Equal(t, "WARN", entry["level"])
				assert.Equal(t, "provider search failed", entry["msg"])
				assert.Equal(t, "Vinted", entry["platform"])
			},
		},
		{
			name:   "console without a terminal has no colors",
			format: logger.FormatConsole,
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.Contains(t, out, "WRN")
				assert.Contains(t, out, "platform=Vinted")
				assert.NotContains(t, out, "\x1b[")
			},
		},
		{
			name:   "unknown format falls back to text",
			format: "yaml",
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.Contains(t, out, "level=WARN")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			l := logger.NewWithWriter(&buf, "info", tt.format)
			l.Warn("provider search failed", "platform", "Vinted")

			tt.check(t, buf.String())
		})
	}
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantError bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true, wantError: true},
		{level: "info", wantInfo: true, wantError: true},
		{level: "error", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			l := logger.NewWithWriter(&buf, tt.level, logger.FormatText)
			l.Debug("extracting attributes")
			l.Info("search complete")
			l.Error("server stopped")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, bytes.Contains([]byte(out), []byte("extracting attributes")))
			assert.Equal(t, tt.wantInfo, bytes.Contains([]byte(out), []byte("search complete")))
			assert.Equal(t, tt.wantError, bytes.Contains([]byte(out), []byte("server stopped")))
		})
	}
}
