package output

import "errors"

// ErrWrite is returned when a summary cannot be written out.
var ErrWrite = errors.New("write summary")
