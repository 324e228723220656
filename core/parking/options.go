package parking

import "time"

// cacheOptions holds optional cache construction knobs.
type cacheOptions struct {
	now func() time.Time
}

// Option is a functional option for cache construction.
type Option func(*cacheOptions)

// WithClock overrides the time source, enabling deterministic expiry in
// tests.
func WithClock(now func() time.Time) Option {
	return func(o *cacheOptions) {
		o.now = now
	}
}

func newCacheOptions(opts []Option) cacheOptions {
	options := cacheOptions{now: time.Now}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
