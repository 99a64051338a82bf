// Package config loads the catalog's runtime configuration from environment
// variables.
//
// Loading is fail-open: a value that parses but is not one of the accepted
// choices falls back to its default and a warning is logged. Only malformed
// values (for example a non-boolean CONFIG_STRICT) are returned as errors,
// unless strict mode turns fallbacks into errors as well.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Defaults applied when a variable is unset or invalid.
const (
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "json"
	DefaultReportFormat = "yaml"
	DefaultServiceName  = "magazine-catalog"
)

var (
	validLogLevels     = []string{"debug", "info", "warn", "error"}
	validLogFormats    = []string{"json", "text"}
	validReportFormats = []string{"yaml", "json"}
)

// ErrInvalidConfig wraps every validation failure returned in strict mode.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the catalog runtime configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogFormat is json or text.
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// ReportFormat selects the catalog report encoding: yaml or json.
	ReportFormat string `env:"REPORT_FORMAT" envDefault:"yaml"`

	// ServiceName is attached to every log line.
	ServiceName string `env:"SERVICE_NAME" envDefault:"magazine-catalog"`

	// Strict turns fallbacks into errors.
	Strict bool `env:"CONFIG_STRICT" envDefault:"false"`
}

// Default returns a Config with every default applied.
func Default() Config {
	return Config{
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
		ReportFormat: DefaultReportFormat,
		ServiceName:  DefaultServiceName,
	}
}

// ParseEnv loads configuration from environment variables without validation.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.ReportFormat = strings.ToLower(strings.TrimSpace(cfg.ReportFormat))
	cfg.ServiceName = strings.TrimSpace(cfg.ServiceName)
	return cfg, nil
}

// LoadFromEnv parses the environment and applies fallbacks for invalid values.
// Each fallback is logged as a warning on logger (which may be nil) and
// counted in catalog_config_fallbacks_total.
func LoadFromEnv(logger *slog.Logger) (Config, error) {
	cfg, err := ParseEnv()
	if err != nil {
		return Config{}, err
	}

	fallbacks := cfg.applyFallbacks()
	if cfg.Strict && len(fallbacks) > 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(warnings(fallbacks), "; "))
	}
	for _, f := range fallbacks {
		recordFallback(f.field)
		if logger != nil {
			logger.Warn("configuration fallback applied",
				slog.String("field", f.field),
				slog.String("warning", f.warning))
		}
	}
	recordLoad(len(fallbacks) > 0)
	return cfg, nil
}

type fallback struct {
	field   string
	warning string
}

func warnings(fallbacks []fallback) []string {
	out := make([]string, 0, len(fallbacks))
	for _, f := range fallbacks {
		out = append(out, f.warning)
	}
	return out
}

// ApplyFallbacks replaces invalid fields with their defaults and returns one
// warning per replaced field.
func (c *Config) ApplyFallbacks() []string {
	return warnings(c.applyFallbacks())
}

func (c *Config) applyFallbacks() []fallback {
	var out []fallback
	check := func(key string, value *string, valid []string, def string) {
		if slices.Contains(valid, *value) {
			return
		}
		out = append(out, fallback{
			field: key,
			warning: fmt.Sprintf("Invalid %s='%s': must be one of %s, falling back to default '%s'",
				key, *value, strings.Join(valid, ", "), def),
		})
		*value = def
	}

	check("LOG_LEVEL", &c.LogLevel, validLogLevels, DefaultLogLevel)
	check("LOG_FORMAT", &c.LogFormat, validLogFormats, DefaultLogFormat)
	check("REPORT_FORMAT", &c.ReportFormat, validReportFormats, DefaultReportFormat)
	if c.ServiceName == "" {
		out = append(out, fallback{
			field:   "SERVICE_NAME",
			warning: fmt.Sprintf("Invalid SERVICE_NAME='': must not be empty, falling back to default '%s'", DefaultServiceName),
		})
		c.ServiceName = DefaultServiceName
	}
	return out
}

// Validate reports the first invalid field without modifying the config.
func (c Config) Validate() error {
	check := c
	if fallbacks := check.applyFallbacks(); len(fallbacks) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fallbacks[0].warning)
	}
	return nil
}
