package conformal

import "github.com/YuminosukeSato/mluno/pkg/log"

// Option configures a ConformalPredictor.
type Option func(*ConformalPredictor)

// WithAlpha sets the significance level. Intervals target 1-alpha coverage.
// Default 0.05.
func WithAlpha(alpha float64) Option {
	return func(cp *ConformalPredictor) {
		cp.alpha = alpha
	}
}

// WithCalibrationSplit holds out fraction of the rows passed to Fit for
// calibration. The wrapped regressor is fitted on the remaining rows only.
// Without it the residuals are taken on the training rows themselves.
func WithCalibrationSplit(fraction float64, seed uint64) Option {
	return func(cp *ConformalPredictor) {
		cp.split = true
		cp.calibrationFraction = fraction
		cp.seed = seed
	}
}

// WithLogger sets the logger records are derived from.
func WithLogger(l log.Logger) Option {
	return func(cp *ConformalPredictor) {
		cp.logger = l
	}
}
