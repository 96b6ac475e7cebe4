package model

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/mluno/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestStateManagerLifecycle(t *testing.T) {
	s := NewStateManager()
	assert.Equal(t, NotFitted, s.State())
	assert.Equal(t, "not_fitted", s.State().String())

	err := s.RequireFitted("KNNRegressor", "Predict")
	var nf *errors.NotFittedError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "KNNRegressor", nf.ModelName)
	assert.Equal(t, "Predict", nf.Method)

	s.SetFitted(3, 20)
	assert.True(t, s.IsFitted())
	nFeatures, nSamples := s.Dimensions()
	assert.Equal(t, 3, nFeatures)
	assert.Equal(t, 20, nSamples)
	assert.NoError(t, s.RequireFitted("KNNRegressor", "Predict"))

	s.Reset()
	assert.False(t, s.IsFitted())
	nFeatures, nSamples = s.Dimensions()
	assert.Zero(t, nFeatures)
	assert.Zero(t, nSamples)
}

func TestRequireFeatures(t *testing.T) {
	s := NewStateManager()
	X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	var nf *errors.NotFittedError
	assert.True(t, errors.As(s.RequireFeatures("LinearRegressor", "Predict", X), &nf))

	s.SetFitted(1, 10)
	err := s.RequireFeatures("LinearRegressor", "Predict", X)
	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 1, dimErr.Expected)
	assert.Equal(t, 2, dimErr.Got)
	assert.Equal(t, 1, dimErr.Axis)

	assert.NoError(t, s.RequireFeatures("LinearRegressor", "Predict", mat.NewDense(3, 1, nil)))
}

func TestCheckXY(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 2, 3})

	rows, cols, err := CheckXY("Fit", X, mat.NewVecDense(3, []float64{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, 3, rows)
	assert.Equal(t, 1, cols)

	_, _, err = CheckXY("Fit", X, mat.NewVecDense(2, []float64{1, 2}))
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))

	_, _, err = CheckXY("Fit", X, mat.NewDense(3, 2, nil))
	var valErr *errors.ValueError
	assert.True(t, errors.As(err, &valErr))

	_, _, err = CheckXY("Fit", &mat.Dense{}, &mat.VecDense{})
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	_, _, err = CheckXY("Fit", X, mat.NewVecDense(3, []float64{1, math.NaN(), 3}))
	assert.True(t, errors.As(err, &valErr))
}

func TestColumnVector(t *testing.T) {
	y := mat.NewDense(3, 1, []float64{4, 5, 6})
	v := ColumnVector(y)
	assert.Equal(t, []float64{4, 5, 6}, v.RawVector().Data)

	y.Set(0, 0, 100)
	assert.Equal(t, 4.0, v.AtVec(0), "ColumnVector must copy")
}
