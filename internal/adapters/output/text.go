package output

import (
	"fmt"
	"io"

	"github.com/okian/fittrack/internal/domain/summary"
)

// TextWriter prints the report line of a summary, one per line.
type TextWriter struct{}

// NewTextWriter creates a new TextWriter.
func NewTextWriter() *TextWriter {
	return &TextWriter{}
}

// Write writes the report line of s followed by a newline.
func (t *TextWriter) Write(w io.Writer, s summary.Summary) error {
	if _, err := fmt.Fprintln(w, s.Message()); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
