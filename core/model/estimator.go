// Package model defines the estimator contracts shared by every regressor
// in mluno, plus fitted-state bookkeeping and input validation helpers.
package model

import "gonum.org/v1/gonum/mat"

// Fitter learns from a feature matrix X (n×d) and a target column y (n×1).
type Fitter interface {
	Fit(X, y mat.Matrix) error
}

// Predictor produces one prediction per row of X as an n×1 matrix.
type Predictor interface {
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Regressor is anything that can be fitted and then asked for point
// predictions. The conformal wrapper accepts any Regressor.
type Regressor interface {
	Fitter
	Predictor
}

// IntervalPredictor returns a point prediction together with lower and upper
// bounds, aligned row for row with X.
type IntervalPredictor interface {
	PredictInterval(X mat.Matrix) (pred, lower, upper *mat.VecDense, err error)
}
