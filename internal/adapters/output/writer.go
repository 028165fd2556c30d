// Package output renders workout summaries for the outside world.
package output

import (
	"io"

	"github.com/okian/fittrack/internal/domain/summary"
)

// Writer formats a summary and writes it to w.
// Implementations: TextWriter, JSONWriter.
type Writer interface {
	Write(w io.Writer, s summary.Summary) error
}
