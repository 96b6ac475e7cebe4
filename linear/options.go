package linear

import "github.com/YuminosukeSato/mluno/pkg/log"

// Option is a function that configures LinearRegressor
type Option func(*LinearRegressor)

// WithLogger sets the logger the model derives its records from
func WithLogger(l log.Logger) Option {
	return func(lr *LinearRegressor) {
		lr.logger = l
	}
}

// WithParallelThreshold sets the row count above which the design matrix is
// assembled in parallel
func WithParallelThreshold(rows int) Option {
	return func(lr *LinearRegressor) {
		lr.parallelThreshold = rows
	}
}
