package datasets

import "github.com/YuminosukeSato/mluno/pkg/log"

// Option configures a generator or a split.
type Option func(*config)

type config struct {
	samples int

	intercept float64
	slope     float64
	noise     float64

	low  float64
	high float64

	seed   uint64
	seeded bool

	holdout float64

	logger log.Logger
}

func newConfig(low, high float64, opts []Option) *config {
	cfg := &config{
		samples: 100,
		slope:   1,
		noise:   1,
		low:     low,
		high:    high,
		holdout: 0.2,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.GetLogger()
	}
	cfg.logger = cfg.logger.With(log.ComponentKey, "datasets")
	return cfg
}

// WithSamples sets the number of generated rows. Default 100.
func WithSamples(n int) Option {
	return func(c *config) {
		c.samples = n
	}
}

// WithCoefficients sets the intercept and slope of MakeLine. Default (0, 1).
func WithCoefficients(intercept, slope float64) Option {
	return func(c *config) {
		c.intercept = intercept
		c.slope = slope
	}
}

// WithNoise sets the standard deviation of the gaussian noise. Default 1.
func WithNoise(sd float64) Option {
	return func(c *config) {
		c.noise = sd
	}
}

// WithRange sets the interval x is drawn from uniformly.
func WithRange(low, high float64) Option {
	return func(c *config) {
		c.low = low
		c.high = high
	}
}

// WithSeed makes the output reproducible. Without it every call draws a
// fresh seed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithHoldout sets the fraction of rows Split puts in the test part. Default 0.2.
func WithHoldout(fraction float64) Option {
	return func(c *config) {
		c.holdout = fraction
	}
}

// WithLogger sets the logger records are derived from.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
