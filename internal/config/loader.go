package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/okian/fittrack/internal/adapters/output"
	service "github.com/okian/fittrack/internal/app"
	"github.com/okian/fittrack/pkg/logger"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variables read by Load.
const (
	EnvPrefix = "FITTRACK_"
	EnvConfig = EnvPrefix + "CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if FITTRACK_CONFIG is set
//  3. env (prefix FITTRACK_)
func Load(_ context.Context) (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(EnvConfig); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// FITTRACK_ERROR_POLICY -> error_policy; underscores are kept to match the
	// flat koanf tags.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings and normalizes them to lower case.
func (c *Config) Validate() error {
	policy, err := service.ParseErrorPolicy(c.ErrorPolicy.String())
	if err != nil {
		return fmt.Errorf("%w: error_policy: %w", ErrInvalidConfig, err)
	}
	c.ErrorPolicy = policy

	c.OutputFormat = normalize(c.OutputFormat)
	switch c.OutputFormat {
	case output.FormatText, output.FormatJSON:
	default:
		return fmt.Errorf("%w: output_format must be %q or %q, got %q", ErrInvalidConfig, output.FormatText, output.FormatJSON, c.OutputFormat)
	}

	c.LogFormat = normalize(c.LogFormat)
	switch c.LogFormat {
	case logger.FormatText, logger.FormatJSON:
	default:
		return fmt.Errorf("%w: log_format must be %q or %q, got %q", ErrInvalidConfig, logger.FormatText, logger.FormatJSON, c.LogFormat)
	}

	for i, p := range c.Packages {
		if p.Code == "" {
			return fmt.Errorf("%w: packages[%d] has no code", ErrInvalidConfig, i)
		}
	}
	return nil
}

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
