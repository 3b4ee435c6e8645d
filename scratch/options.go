package scratch

import "github.com/cwbudde/algo-scratch/dual"

type config struct {
	layout   dual.Layout
	explicit bool
}

// Option configures cache construction.
type Option func(*config)

// WithChunk provisions a single differentiation level with the given
// partial count.
func WithChunk(partialCount int) Option {
	return func(cfg *config) {
		cfg.layout = dual.Chunk(partialCount)
		cfg.explicit = true
	}
}

// WithLevels provisions nested differentiation levels from per-level
// partial counts, innermost level first, so one allocation serves any
// nesting depth up to len(counts) without regrowing per level.
func WithLevels(counts ...int) Option {
	return func(cfg *config) {
		cfg.layout = dual.Chunks(counts...)
		cfg.explicit = true
	}
}

// WithLayout provisions for an existing layout descriptor.
func WithLayout(l dual.Layout) Option {
	return func(cfg *config) {
		cfg.layout = l
		cfg.explicit = true
	}
}

func applyOptions(n int, opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.explicit {
		cfg.layout = dual.Chunk(dual.DefaultChunk(n))
	}
	return cfg
}
