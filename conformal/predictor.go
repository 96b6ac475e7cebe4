// Package conformal wraps a point regressor into an interval predictor using
// split conformal prediction with absolute-residual scores.
//
// After Fit, every interval has the same half-width: the (1-alpha) quantile
// of the calibration residuals |ŷ - y|.
package conformal

import (
	"math"

	"github.com/YuminosukeSato/mluno/core/model"
	"github.com/YuminosukeSato/mluno/datasets"
	"github.com/YuminosukeSato/mluno/pkg/errors"
	"github.com/YuminosukeSato/mluno/pkg/log"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
)

const (
	modelName    = "ConformalPredictor"
	defaultAlpha = 0.05
)

// ConformalPredictor holds a wrapped regressor, the calibration scores and
// their quantile. The regressor is shared with the caller and is refitted by
// every Fit.
type ConformalPredictor struct {
	state *model.StateManager
	reg   model.Regressor

	alpha float64

	split               bool
	calibrationFraction float64
	seed                uint64

	scores   []float64
	quantile float64

	logger log.Logger
}

// NewConformalPredictor wraps reg. The predictor starts uncalibrated.
func NewConformalPredictor(reg model.Regressor, opts ...Option) *ConformalPredictor {
	cp := &ConformalPredictor{
		state: model.NewStateManager(),
		reg:   reg,
		alpha: defaultAlpha,
	}
	for _, opt := range opts {
		opt(cp)
	}
	if cp.logger == nil {
		cp.logger = log.GetLogger()
	}
	cp.logger = cp.logger.With(
		log.ModelNameKey, modelName,
		log.EstimatorIDKey, uuid.NewString(),
		log.AlphaKey, cp.alpha,
	)
	return cp
}

// Fit fits the wrapped regressor and calibrates the interval half-width.
// A failed Fit leaves the predictor uncalibrated.
func (cp *ConformalPredictor) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "ConformalPredictor.Fit")

	cp.state.Reset()
	cp.scores = nil
	cp.quantile = 0

	if !(cp.alpha > 0 && cp.alpha < 1) {
		return errors.NewValidationError("alpha", "must be in the open interval (0, 1)", cp.alpha)
	}
	if cp.reg == nil {
		return errors.NewValueError("ConformalPredictor.Fit", "no regressor to wrap")
	}
	r, c, err := model.CheckXY("ConformalPredictor.Fit", X, y)
	if err != nil {
		return err
	}

	fitX, fitY, calX, calY := X, y, X, y
	if cp.split {
		if !(cp.calibrationFraction > 0 && cp.calibrationFraction < 1) {
			return errors.NewValidationError("calibration_fraction", "must be in the open interval (0, 1)", cp.calibrationFraction)
		}
		part, err := datasets.Split(X, y,
			datasets.WithHoldout(cp.calibrationFraction),
			datasets.WithSeed(cp.seed),
			datasets.WithLogger(cp.logger),
		)
		if err != nil {
			return err
		}
		fitX, fitY, calX, calY = part.XTrain, part.YTrain, part.XTest, part.YTest
	}

	if err := cp.reg.Fit(fitX, fitY); err != nil {
		return errors.Wrap(err, "ConformalPredictor.Fit: fitting wrapped regressor")
	}
	scores, err := cp.residuals(calX, calY)
	if err != nil {
		return err
	}
	q, err := Quantile(scores, 1-cp.alpha)
	if err != nil {
		return err
	}

	if cp.alpha < 1/float64(len(scores)+1) {
		errors.Warn(errors.NewCalibrationWarning(len(scores), cp.alpha))
	}

	cp.scores = scores
	cp.quantile = q
	cp.state.SetFitted(c, r)

	cp.logger.Debug("calibrated",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, r,
		log.CalibrationKey, len(scores),
		log.QuantileKey, q,
	)
	return nil
}

// residuals are the nonconformity scores |ŷ - y| of the calibration rows.
func (cp *ConformalPredictor) residuals(X, y mat.Matrix) ([]float64, error) {
	pred, err := cp.reg.Predict(X)
	if err != nil {
		return nil, errors.Wrap(err, "ConformalPredictor.Fit: scoring calibration rows")
	}
	n, _ := y.Dims()
	if pr, _ := pred.Dims(); pr != n {
		return nil, errors.NewDimensionError("ConformalPredictor.Fit", n, pr, 0)
	}
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = math.Abs(pred.At(i, 0) - y.At(i, 0))
	}
	return scores, nil
}

// Predict returns the point predictions of the wrapped regressor.
func (cp *ConformalPredictor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !cp.state.IsFitted() {
		return nil, errors.NewNotCalibratedError(modelName, "Predict")
	}
	return cp.reg.Predict(X)
}

// PredictInterval returns the point predictions with lower = pred - q and
// upper = pred + q for the calibrated quantile q.
func (cp *ConformalPredictor) PredictInterval(X mat.Matrix) (pred, lower, upper *mat.VecDense, err error) {
	if !cp.state.IsFitted() {
		return nil, nil, nil, errors.NewNotCalibratedError(modelName, "PredictInterval")
	}
	p, err := cp.reg.Predict(X)
	if err != nil {
		return nil, nil, nil, err
	}

	pred = model.ColumnVector(p)
	n := pred.Len()
	lower = mat.NewVecDense(n, nil)
	upper = mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		v := pred.AtVec(i)
		lower.SetVec(i, v-cp.quantile)
		upper.SetVec(i, v+cp.quantile)
	}

	cp.logger.Debug("predict interval",
		log.OperationKey, log.OperationPredictInterval,
		log.PredsKey, n,
	)
	return pred, lower, upper, nil
}

// Alpha returns the configured significance level.
func (cp *ConformalPredictor) Alpha() float64 {
	return cp.alpha
}

// Quantile returns the calibrated interval half-width.
func (cp *ConformalPredictor) Quantile() (float64, error) {
	if !cp.state.IsFitted() {
		return 0, errors.NewNotCalibratedError(modelName, "Quantile")
	}
	return cp.quantile, nil
}

// Scores returns a copy of the calibration scores, nil before Fit.
func (cp *ConformalPredictor) Scores() []float64 {
	if cp.scores == nil {
		return nil
	}
	out := make([]float64, len(cp.scores))
	copy(out, cp.scores)
	return out
}

// IsFitted reports whether the predictor is calibrated.
func (cp *ConformalPredictor) IsFitted() bool {
	return cp.state.IsFitted()
}

// Regressor returns the wrapped regressor.
func (cp *ConformalPredictor) Regressor() model.Regressor {
	return cp.reg
}

var (
	_ model.Regressor         = (*ConformalPredictor)(nil)
	_ model.IntervalPredictor = (*ConformalPredictor)(nil)
)
