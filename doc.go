// Package mluno is a small regression library with conformal prediction
// intervals, built on gonum.
//
// Any regressor with Fit and Predict can be wrapped by a
// conformal.ConformalPredictor, which calibrates a constant interval
// half-width from absolute residuals so that intervals target 1-alpha
// coverage.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/mluno/conformal"
//	    "github.com/YuminosukeSato/mluno/datasets"
//	    "github.com/YuminosukeSato/mluno/metrics"
//	    "github.com/YuminosukeSato/mluno/neighbors"
//	)
//
//	func main() {
//	    X, y, err := datasets.MakeSine(datasets.WithSeed(1))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    part, err := datasets.Split(X, y, datasets.WithSeed(2))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    cp := conformal.NewConformalPredictor(neighbors.NewKNNRegressor(), conformal.WithAlpha(0.1))
//	    if err := cp.Fit(part.XTrain, part.YTrain); err != nil {
//	        log.Fatal(err)
//	    }
//	    _, lower, upper, err := cp.PredictInterval(part.XTest)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    cov, _ := metrics.Coverage(part.YTest, lower, upper)
//	    fmt.Println("coverage:", cov)
//	}
//
// # Packages
//
//   - neighbors: brute-force k-nearest-neighbours regression
//   - linear: ordinary least squares via the normal equations
//   - conformal: split conformal wrapper and the empirical quantile
//   - datasets: seeded line and sine generators, train/test split
//   - metrics: RMSE, MAE, MSE, R², interval coverage and sharpness
//   - plotting: prediction and interval plots on gonum/plot
//   - core/model: estimator interfaces, fitted state, input validation
//   - core/parallel: row-chunked parallel loops
//   - pkg/errors, pkg/log: error taxonomy and structured logging
package mluno
