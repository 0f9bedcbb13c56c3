package maze

import "math/rand"

// DefaultSeed seeds the generator when neither WithRand nor WithSeed is given.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// config holds the resolved knobs for a single Build call.
type config struct {
	// rng drives every frontier draw; never nil after newConfig.
	rng *rand.Rand
}

// Option customizes Build by mutating a config before generation starts.
type Option func(*config)

// WithRand supplies an explicit generator. Build advances its state by exactly
// one Intn draw per accepted edge.
// Panics on nil to surface programmer error early.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a fresh generator seeded with seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// newConfig applies opts in order (last wins) and falls back to a stream
// seeded with DefaultSeed.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}
