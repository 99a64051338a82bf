package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "LOG_FORMAT", "REPORT_FORMAT", "SERVICE_NAME", "CONFIG_STRICT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadFromEnv(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("REPORT_FORMAT", "json")
	t.Setenv("SERVICE_NAME", "catalog-test")

	cfg, err := LoadFromEnv(nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "json", cfg.ReportFormat)
	assert.Equal(t, "catalog-test", cfg.ServiceName)
}

func TestLoadFromEnv_Fallbacks(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		field    func(Config) string
		expected string
	}{
		{name: "invalid log level", key: "LOG_LEVEL", value: "verbose", field: func(c Config) string { return c.LogLevel }, expected: DefaultLogLevel},
		{name: "invalid log format", key: "LOG_FORMAT", value: "xml", field: func(c Config) string { return c.LogFormat }, expected: DefaultLogFormat},
		{name: "invalid report format", key: "REPORT_FORMAT", value: "csv", field: func(c Config) string { return c.ReportFormat }, expected: DefaultReportFormat},
		{name: "blank service name", key: "SERVICE_NAME", value: "   ", field: func(c Config) string { return c.ServiceName }, expected: DefaultServiceName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			cfg, err := LoadFromEnv(logger)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tt.field(cfg))
			assert.Contains(t, buf.String(), "configuration fallback applied")
			assert.Contains(t, buf.String(), tt.key)
		})
	}
}

func TestLoadFromEnv_Strict(t *testing.T) {
	t.Setenv("CONFIG_STRICT", "true")
	t.Setenv("LOG_FORMAT", "xml")

	_, err := LoadFromEnv(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestLoadFromEnv_ParseError(t *testing.T) {
	t.Setenv("CONFIG_STRICT", "not-a-bool")

	_, err := LoadFromEnv(nil)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"))
}

func TestValidate_DoesNotMutate(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, "loud", cfg.LogLevel)
}

func TestLoadFromEnv_RecordsFallbackMetrics(t *testing.T) {
	t.Setenv("REPORT_FORMAT", "toml")

	before := testutil.ToFloat64(FallbacksTotal.WithLabelValues("REPORT_FORMAT"))

	_, err := LoadFromEnv(nil)
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(FallbacksTotal.WithLabelValues("REPORT_FORMAT")))
	assert.Equal(t, float64(1), testutil.ToFloat64(FallbackActive))
	assert.Positive(t, testutil.ToFloat64(LoadTimestamp))
}
