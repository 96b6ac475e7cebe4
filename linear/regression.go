// Package linear implements ordinary least squares regression solved in
// closed form with the normal equations.
package linear

import (
	"github.com/YuminosukeSato/mluno/core/model"
	"github.com/YuminosukeSato/mluno/core/parallel"
	"github.com/YuminosukeSato/mluno/metrics"
	"github.com/YuminosukeSato/mluno/pkg/errors"
	"github.com/YuminosukeSato/mluno/pkg/log"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
)

const modelName = "LinearRegressor"

// 並列処理の閾値（この値以下の行数では逐次処理を使用）
const defaultParallelThreshold = 1000

// LinearRegressor は正規方程式で解く線形回帰モデル
type LinearRegressor struct {
	state *model.StateManager

	// weights は [切片, 係数...] の長さ d+1 のベクトル。Fit 前は nil
	weights *mat.VecDense

	parallelThreshold int
	logger            log.Logger
}

// NewLinearRegressor は新しい線形回帰モデルを作成する
func NewLinearRegressor(opts ...Option) *LinearRegressor {
	lr := &LinearRegressor{
		state:             model.NewStateManager(),
		parallelThreshold: defaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(lr)
	}
	if lr.logger == nil {
		lr.logger = log.GetLogger()
	}
	lr.logger = lr.logger.With(
		log.ModelNameKey, modelName,
		log.EstimatorIDKey, uuid.NewString(),
	)
	return lr
}

// Fit はモデルを訓練データで学習させる
// 正規方程式 w = (X_b^T * X_b)^(-1) * X_b^T * y を使用
func (lr *LinearRegressor) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "LinearRegressor.Fit")

	r, c, err := model.CheckXY("LinearRegressor.Fit", X, y)
	if err != nil {
		return err
	}

	// 再学習時は以前の状態を破棄する
	lr.state.Reset()
	lr.weights = nil

	Xb := lr.withIntercept(X)

	var XTX mat.Dense
	XTX.Mul(Xb.T(), Xb)

	var XTXInv mat.Dense
	if err := XTXInv.Inverse(&XTX); err != nil {
		lr.logger.Error("normal equations are singular", err,
			log.OperationKey, log.OperationFit,
			log.ErrorCodeKey, log.ErrorSingularMatrix,
		)
		return errors.NewModelError("LinearRegressor.Fit", "singular matrix", errors.ErrSingularMatrix)
	}

	var XTy mat.VecDense
	XTy.MulVec(Xb.T(), model.ColumnVector(y))

	weights := mat.NewVecDense(c+1, nil)
	weights.MulVec(&XTXInv, &XTy)

	if err := errors.CheckNumericalStability("LinearRegressor.Fit", weights.RawVector().Data, 0); err != nil {
		return err
	}

	lr.weights = weights
	lr.state.SetFitted(c, r)

	lr.logger.Debug("fit",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, r,
		log.FeaturesKey, c,
	)
	return nil
}

// Predict は X_b · w を返す
func (lr *LinearRegressor) Predict(X mat.Matrix) (_ mat.Matrix, err error) {
	defer errors.Recover(&err, "LinearRegressor.Predict")

	if err := lr.state.RequireFeatures(modelName, "Predict", X); err != nil {
		return nil, err
	}
	r, _, err := model.CheckX("LinearRegressor.Predict", X)
	if err != nil {
		return nil, err
	}

	predictions := mat.NewVecDense(r, nil)
	predictions.MulVec(lr.withIntercept(X), lr.weights)

	lr.logger.Debug("predict",
		log.OperationKey, log.OperationPredict,
		log.PredsKey, r,
	)
	return predictions, nil
}

// withIntercept は X の先頭に 1 の列を追加した X_b を作る
func (lr *LinearRegressor) withIntercept(X mat.Matrix) *mat.Dense {
	r, c := X.Dims()
	Xb := mat.NewDense(r, c+1, nil)
	parallel.ParallelizeWithThreshold(r, lr.parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			Xb.Set(i, 0, 1.0)
			for j := 0; j < c; j++ {
				Xb.Set(i, j+1, X.At(i, j))
			}
		}
	})
	return Xb
}

// Weights は学習された重み [切片, 係数...] のコピーを返す。Fit 前は nil
func (lr *LinearRegressor) Weights() []float64 {
	if lr.weights == nil {
		return nil
	}
	out := make([]float64, lr.weights.Len())
	copy(out, lr.weights.RawVector().Data)
	return out
}

// Intercept は学習された切片を返す
func (lr *LinearRegressor) Intercept() float64 {
	if lr.weights == nil {
		return 0
	}
	return lr.weights.AtVec(0)
}

// Coef は切片を除いた係数を返す
func (lr *LinearRegressor) Coef() []float64 {
	w := lr.Weights()
	if w == nil {
		return nil
	}
	return w[1:]
}

// IsFitted はモデルが学習済みかどうかを返す
func (lr *LinearRegressor) IsFitted() bool {
	return lr.state.IsFitted()
}

// Score は X に対する予測の決定係数（R²）を返す
func (lr *LinearRegressor) Score(X, y mat.Matrix) (float64, error) {
	if err := lr.state.RequireFitted(modelName, "Score"); err != nil {
		return 0, err
	}
	r, _, err := model.CheckXY("LinearRegressor.Score", X, y)
	if err != nil {
		return 0, err
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	score, err := metrics.R2Score(model.ColumnVector(y), model.ColumnVector(yPred))
	if err != nil {
		return 0, err
	}

	lr.logger.Debug("score",
		log.OperationKey, log.OperationScore,
		log.SamplesKey, r,
	)
	return score, nil
}
