package synth

import "math/rand"

// Option customises Generate: a function that mutates an unexported
// config, applied in order over a set of defaults.
type Option func(cfg *config)

// config holds Generate's resolved parameters: an RNG (always non-nil once
// resolved) plus the engine bounds to stamp onto the generated Problem.
type config struct {
	rng *rand.Rand

	maxRuntime float64
	maxDepth   int
	logDetail  int
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		rng:        rand.New(rand.NewSource(rand.Int63())),
		maxRuntime: 20.0,
		maxDepth:   15,
		logDetail:  0,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed seeds Generate's RNG for reproducible fixtures, mirroring
// builder.WithSeed.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand injects an explicit RNG. A nil rng is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithEngineBounds overrides the MaxRuntime/MaxDepth/LogDetail fields
// stamped onto the generated Problem's record 2. Generate's defaults (20s,
// depth 15, minimal logging) match generate_random_dg_problem.py's own
// hard-coded header values.
func WithEngineBounds(maxRuntime float64, maxDepth, logDetail int) Option {
	return func(cfg *config) {
		cfg.maxRuntime = maxRuntime
		cfg.maxDepth = maxDepth
		cfg.logDetail = logDetail
	}
}
