package dedupe

// Option applies a configuration option to the in-memory deduper.
type Option func(*inMemoryDeduper)

// WithMaxSize bounds the number of remembered package ids.
// If maxSize > 0 the oldest id is forgotten first once the bound is hit.
// If maxSize <= 0 every id is remembered.
func WithMaxSize(maxSize int) Option {
	return func(d *inMemoryDeduper) {
		d.maxSize = maxSize
	}
}
