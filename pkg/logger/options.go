package logger

import (
	"io"
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Option applies a configuration option to Init.
type Option func(*options)

type options struct {
	output     io.Writer
	format     string
	file       string
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
}

// WithOutput sends log records to w.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithFormat selects the text or json handler.
func WithFormat(format string) Option {
	return func(o *options) {
		if format != "" {
			o.format = format
		}
	}
}

// WithFile writes log records to a rotating file instead of the output writer.
// Zero limits keep lumberjack's defaults.
func WithFile(path string, maxSizeMB, maxBackups, maxAgeDays int) Option {
	return func(o *options) {
		o.file = path
		o.maxSizeMB = maxSizeMB
		o.maxBackups = maxBackups
		o.maxAgeDays = maxAgeDays
	}
}
