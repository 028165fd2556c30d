package output

import "strings"

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// NewWriter creates a Writer for format (case-insensitive).
// Unknown formats fall back to text.
func NewWriter(format string) Writer {
	switch strings.ToLower(format) {
	case FormatJSON:
		return NewJSONWriter()
	case FormatText:
		return NewTextWriter()
	default:
		return NewTextWriter()
	}
}
