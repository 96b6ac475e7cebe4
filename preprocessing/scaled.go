package preprocessing

import (
	"github.com/YuminosukeSato/mluno/core/model"
	"gonum.org/v1/gonum/mat"
)

// ScaledRegressor standardises X with a StandardScaler fitted on the
// training rows and hands the scaled matrix to the wrapped regressor. It is
// itself a model.Regressor, so it can be wrapped by conformal prediction.
type ScaledRegressor struct {
	Scaler    *StandardScaler
	Regressor model.Regressor
}

// NewScaledRegressor wraps reg with a default StandardScaler.
func NewScaledRegressor(reg model.Regressor) *ScaledRegressor {
	return &ScaledRegressor{
		Scaler:    NewStandardScaler(true, true),
		Regressor: reg,
	}
}

// Fit fits the scaler on X and the regressor on the scaled X.
func (sr *ScaledRegressor) Fit(X, y mat.Matrix) error {
	Xs, err := sr.Scaler.FitTransform(X)
	if err != nil {
		return err
	}
	return sr.Regressor.Fit(Xs, y)
}

// Predict scales X with the training statistics and predicts.
func (sr *ScaledRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	Xs, err := sr.Scaler.Transform(X)
	if err != nil {
		return nil, err
	}
	return sr.Regressor.Predict(Xs)
}

var _ model.Regressor = (*ScaledRegressor)(nil)
