package session

import (
	"math/rand/v2"

	"github.com/cwbudde/algo-denoise/internal/logger"
	"github.com/cwbudde/algo-denoise/metrics"
)

type config struct {
	src        rand.Source
	defaults   Params
	sampleRate float64
	log        logger.Logger
	metrics    *metrics.Recorder
}

func defaultConfig() config {
	return config{
		defaults: DefaultParams(),
		log:      logger.NopLogger{},
	}
}

// Option configures a Controller.
type Option func(*config)

// WithSource sets the random source of the noise model. A fixed-seed source
// makes every frame reproducible.
func WithSource(src rand.Source) Option {
	return func(cfg *config) { cfg.src = src }
}

// WithSeed is WithSource with a PCG source seeded from seed.
func WithSeed(seed uint64) Option {
	return WithSource(rand.NewPCG(seed, seed))
}

// WithDefaults replaces the parameters used at start and on reset.
func WithDefaults(p Params) Option {
	return func(cfg *config) { cfg.defaults = p }
}

// WithSampleRate fixes the filter sample rate instead of deriving it from the
// grid spacing.
func WithSampleRate(hz float64) Option {
	return func(cfg *config) { cfg.sampleRate = hz }
}

// WithLogger sets the logger. Nil keeps the no-op logger.
func WithLogger(l logger.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.log = l
		}
	}
}

// WithMetrics records updates in r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(cfg *config) { cfg.metrics = r }
}
