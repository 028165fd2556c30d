package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/okian/fittrack/internal/domain/summary"
)

// JSONWriter writes summaries as newline delimited JSON objects.
// Values keep full precision.
type JSONWriter struct{}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

// Write encodes s as a single JSON line.
func (j *JSONWriter) Write(w io.Writer, s summary.Summary) error {
	if err := json.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
