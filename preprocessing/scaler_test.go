package preprocessing

import (
	"testing"

	"github.com/YuminosukeSato/mluno/neighbors"
	"github.com/YuminosukeSato/mluno/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func TestStandardScaler_FitTransform(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 100,
		2, 200,
		3, 300,
		4, 400,
	})
	s := NewStandardScaler(true, true)
	Xs, err := s.FitTransform(X)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{2.5, 250}, s.Mean(), 1e-12)
	for j := 0; j < 2; j++ {
		mean, variance := stat.PopMeanVariance(mat.Col(nil, j, Xs), nil)
		assert.InDelta(t, 0, mean, 1e-12)
		assert.InDelta(t, 1, variance, 1e-12)
	}

	back, err := s.InverseTransform(Xs)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(X, back, 1e-9))
}

func TestStandardScaler_ConstantFeature(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		5, 1,
		5, 2,
		5, 3,
	})
	s := NewStandardScaler(true, true)
	Xs, err := s.FitTransform(X)
	require.NoError(t, err)

	assert.Equal(t, 1.0, s.Scale()[0])
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, Xs.At(i, 0))
	}
}

func TestStandardScaler_Flags(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{2, 4})

	onlyStd := NewStandardScaler(false, true)
	Xs, err := onlyStd.FitTransform(X)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, onlyStd.Mean())
	assert.InDelta(t, 2, Xs.At(0, 0), 1e-12)

	onlyMean := NewStandardScaler(true, false)
	Xs, err = onlyMean.FitTransform(X)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, onlyMean.Scale())
	assert.Equal(t, -1.0, Xs.At(0, 0))
}

func TestStandardScaler_Errors(t *testing.T) {
	s := NewStandardScaler(true, true)
	assert.Nil(t, s.Mean())

	_, err := s.Transform(mat.NewDense(1, 1, []float64{1}))
	var nf *errors.NotFittedError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "StandardScaler", nf.ModelName)

	require.NoError(t, s.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})))
	_, err = s.Transform(mat.NewDense(1, 3, []float64{1, 2, 3}))
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))

	err = s.Fit(&mat.Dense{})
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}

func TestScaledRegressor_EqualisesFeatureScales(t *testing.T) {
	// raw distances are dominated by the second feature
	X := mat.NewDense(2, 2, []float64{
		0, 0,
		10, 100,
	})
	y := mat.NewVecDense(2, []float64{1, 2})
	query := mat.NewDense(1, 2, []float64{1, 60})

	raw := neighbors.NewKNNRegressor(neighbors.WithK(1))
	require.NoError(t, raw.Fit(X, y))
	p, err := raw.Predict(query)
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.At(0, 0))

	scaled := NewScaledRegressor(neighbors.NewKNNRegressor(neighbors.WithK(1)))
	require.NoError(t, scaled.Fit(X, y))
	p, err = scaled.Predict(query)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.At(0, 0))
}

func TestScaledRegressor_NotFitted(t *testing.T) {
	sr := NewScaledRegressor(neighbors.NewKNNRegressor())
	_, err := sr.Predict(mat.NewDense(1, 1, []float64{0}))
	var nf *errors.NotFittedError
	assert.True(t, errors.As(err, &nf))
}
