// Package preprocessing standardises features before they reach a
// distance-based regressor.
package preprocessing

import (
	"math"

	"github.com/YuminosukeSato/mluno/core/model"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const scalerName = "StandardScaler"

// 標準偏差がこれ未満の特徴量は 1 で割る（ゼロ除算回避）
const minScale = 1e-8

// StandardScaler は各特徴量を平均0、標準偏差1に変換する
type StandardScaler struct {
	state *model.StateManager

	// Fit で求めた特徴量ごとの平均と母標準偏差
	mean  []float64
	scale []float64

	withMean bool
	withStd  bool
}

// NewStandardScaler は平均の除去・標準偏差での除算をそれぞれ指定して作成する
//
//	scaler := preprocessing.NewStandardScaler(true, true)
//	XScaled, err := scaler.FitTransform(X)
func NewStandardScaler(withMean, withStd bool) *StandardScaler {
	return &StandardScaler{
		state:    model.NewStateManager(),
		withMean: withMean,
		withStd:  withStd,
	}
}

// Fit は訓練データから平均と標準偏差を計算する
func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c, err := model.CheckX("StandardScaler.Fit", X)
	if err != nil {
		return err
	}

	s.state.Reset()
	s.mean = make([]float64, c)
	s.scale = make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		mean, variance := stat.PopMeanVariance(col, nil)
		if s.withMean {
			s.mean[j] = mean
		}
		s.scale[j] = 1
		if sd := math.Sqrt(variance); s.withStd && sd >= minScale {
			s.scale[j] = sd
		}
	}

	s.state.SetFitted(c, r)
	return nil
}

// Transform は (x - mean) / scale を返す
func (s *StandardScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	return s.apply("Transform", X, func(v float64, j int) float64 {
		return (v - s.mean[j]) / s.scale[j]
	})
}

// InverseTransform は標準化されたデータを元のスケールに戻す
func (s *StandardScaler) InverseTransform(X mat.Matrix) (*mat.Dense, error) {
	return s.apply("InverseTransform", X, func(v float64, j int) float64 {
		return v*s.scale[j] + s.mean[j]
	})
}

// FitTransform は Fit の後に同じデータを Transform する
func (s *StandardScaler) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

func (s *StandardScaler) apply(method string, X mat.Matrix, f func(v float64, j int) float64) (*mat.Dense, error) {
	if err := s.state.RequireFeatures(scalerName, method, X); err != nil {
		return nil, err
	}
	r, c := X.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(i, j int, v float64) float64 {
		return f(v, j)
	}, X)
	return out, nil
}

// Mean は特徴量ごとの平均のコピーを返す。Fit 前は nil
func (s *StandardScaler) Mean() []float64 {
	if !s.state.IsFitted() {
		return nil
	}
	return append([]float64(nil), s.mean...)
}

// Scale は特徴量ごとの除数のコピーを返す。Fit 前は nil
func (s *StandardScaler) Scale() []float64 {
	if !s.state.IsFitted() {
		return nil
	}
	return append([]float64(nil), s.scale...)
}

// IsFitted は学習済みかどうかを返す
func (s *StandardScaler) IsFitted() bool {
	return s.state.IsFitted()
}
