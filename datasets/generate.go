// Package datasets generates seeded synthetic regression data and splits
// datasets into train and test parts.
package datasets

import (
	"math"
	"math/rand/v2"

	"github.com/YuminosukeSato/mluno/pkg/errors"
	"github.com/YuminosukeSato/mluno/pkg/log"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// MakeLine draws n points from y = intercept + slope*x + N(0, sd²) with x
// uniform on the configured range, [-10, 10] by default.
func MakeLine(opts ...Option) (*mat.Dense, *mat.VecDense, error) {
	cfg := newConfig(-10, 10, opts)
	if err := cfg.validateGenerator("datasets.MakeLine"); err != nil {
		return nil, nil, err
	}

	x, noise := cfg.draw()
	y := make([]float64, cfg.samples)
	for i := range y {
		y[i] = cfg.intercept + cfg.slope*x[i] + noise[i]
	}
	cfg.logGenerated("line")
	return mat.NewDense(cfg.samples, 1, x), mat.NewVecDense(cfg.samples, y), nil
}

// MakeSine draws n points from y = sin(x) + N(0, sd²) with x uniform on the
// configured range, [-6, 6] by default. WithCoefficients is ignored.
func MakeSine(opts ...Option) (*mat.Dense, *mat.VecDense, error) {
	cfg := newConfig(-6, 6, opts)
	if err := cfg.validateGenerator("datasets.MakeSine"); err != nil {
		return nil, nil, err
	}

	x, noise := cfg.draw()
	y := make([]float64, cfg.samples)
	for i := range y {
		y[i] = math.Sin(x[i]) + noise[i]
	}
	cfg.logGenerated("sine")
	return mat.NewDense(cfg.samples, 1, x), mat.NewVecDense(cfg.samples, y), nil
}

func (c *config) validateGenerator(op string) error {
	if c.samples <= 0 {
		return errors.NewValidationError("samples", op+": must be positive", c.samples)
	}
	if !(c.noise >= 0) || math.IsInf(c.noise, 1) {
		return errors.NewValidationError("noise", op+": must be a finite non-negative standard deviation", c.noise)
	}
	if !(c.low < c.high) || math.IsInf(c.low, 0) || math.IsInf(c.high, 0) {
		return errors.NewValidationError("range", op+": low must be finite and below high", [2]float64{c.low, c.high})
	}
	return nil
}

// draw takes all x values first and then all noise values from a single
// source, so a seed pins the whole dataset.
func (c *config) draw() (x, noise []float64) {
	c.resolveSeed()
	src := rand.NewPCG(c.seed, c.seed)

	uniform := distuv.Uniform{Min: c.low, Max: c.high, Src: src}
	x = make([]float64, c.samples)
	for i := range x {
		x[i] = uniform.Rand()
	}

	normal := distuv.Normal{Mu: 0, Sigma: c.noise, Src: src}
	noise = make([]float64, c.samples)
	for i := range noise {
		noise[i] = normal.Rand()
	}
	return x, noise
}

func (c *config) resolveSeed() {
	if !c.seeded {
		c.seed = rand.Uint64()
		c.seeded = true
	}
}

func (c *config) logGenerated(kind string) {
	c.logger.Debug("generated "+kind+" data",
		log.OperationKey, log.OperationGenerate,
		log.SamplesKey, c.samples,
		log.RandomSeedKey, c.seed,
	)
}
