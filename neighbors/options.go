package neighbors

import "github.com/YuminosukeSato/mluno/pkg/log"

// Option configures a KNNRegressor.
type Option func(*KNNRegressor)

// WithK sets the number of neighbours averaged per prediction. It is
// validated by Fit.
func WithK(k int) Option {
	return func(knn *KNNRegressor) {
		knn.k = k
	}
}

// WithLogger sets the logger the model derives its records from.
func WithLogger(l log.Logger) Option {
	return func(knn *KNNRegressor) {
		knn.logger = l
	}
}

// WithParallelThreshold sets the number of query rows above which Predict
// fans out across goroutines. A negative value always parallelizes.
func WithParallelThreshold(rows int) Option {
	return func(knn *KNNRegressor) {
		knn.parallelThreshold = rows
	}
}
