package lang

import "github.com/ardnew/aconf/log"

// options holds parser and translator configuration.
type options struct {
	logger  log.Logger // structured logger (zero value discards)
	noCache bool       // bypass the parse cache
}

// Option configures parsing or translation behavior.
type Option func(*options)

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCache controls whether [ParseReader] consults and populates the parse
// cache. Caching is enabled by default.
func WithCache(enable bool) Option {
	return func(o *options) {
		o.noCache = !enable
	}
}

// makeOptions returns the default options overridden by opts.
func makeOptions(opts ...Option) options {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
