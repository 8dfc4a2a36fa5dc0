package vector

import "go.uber.org/zap"

type config struct {
	logger *zap.Logger
	limit  int // max bytes per storage block, 0 = unlimited
}

// Option configures a Vector or a Storage at construction.
type Option func(*config)

// WithLogger sets the logger used to report reallocations and refused
// allocations. A nil logger keeps the default no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMemoryLimit caps the size in bytes of any single storage block.
// Requests above the cap fail with ErrOutOfMemory. If bytes <= 0 the
// limit is removed.
func WithMemoryLimit(bytes int) Option {
	return func(c *config) {
		if bytes < 0 {
			bytes = 0
		}
		c.limit = bytes
	}
}

func newConfig(opts ...Option) *config {
	c := &config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
