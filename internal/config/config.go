// Package config defines process configuration and how it is loaded.
package config

import (
	"github.com/okian/fittrack/internal/adapters/output"
	service "github.com/okian/fittrack/internal/app"
	"github.com/okian/fittrack/internal/domain/model"
	"github.com/okian/fittrack/pkg/logger"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// LogFile, when set, sends logs to a rotating file instead of stderr.
	LogFile       string `koanf:"log_file"`
	LogMaxSizeMB  int    `koanf:"log_max_size_mb"`
	LogMaxBackups int    `koanf:"log_max_backups"`
	LogMaxAgeDays int    `koanf:"log_max_age_days"`

	// ErrorPolicy decides what a rejected package does to its batch: halt or skip.
	ErrorPolicy service.ErrorPolicy `koanf:"error_policy"`

	// OutputFormat selects how summaries are printed: text or json.
	OutputFormat string `koanf:"output_format"`

	// DedupeSize bounds the remembered package ids; 0 or less keeps all.
	DedupeSize int `koanf:"dedupe_size"`

	// MetricsFile, when set, receives the Prometheus textfile after each run.
	MetricsFile string `koanf:"metrics_file"`

	// Packages overrides the reference batch.
	Packages []model.Package `koanf:"packages"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		LogFormat:     logger.FormatText,
		LogMaxSizeMB:  100,
		LogMaxBackups: 3,
		LogMaxAgeDays: 7,
		ErrorPolicy:   service.PolicyHalt,
		OutputFormat:  output.FormatText,
		DedupeSize:    10_000,
	}
}

// Batch returns the configured packages, or the reference batch when none are set.
func (c *Config) Batch() []model.Package {
	if len(c.Packages) == 0 {
		return model.DefaultBatch()
	}
	return c.Packages
}
