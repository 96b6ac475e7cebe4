package model

import (
	"github.com/YuminosukeSato/mluno/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// CheckXY validates a training pair: X non-empty, y an n×1 column with the
// same number of rows, and every value finite. It returns the shape of X.
func CheckXY(op string, X, y mat.Matrix) (rows, cols int, err error) {
	rows, cols = X.Dims()
	if rows == 0 || cols == 0 {
		return 0, 0, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	yRows, yCols := y.Dims()
	if yRows != rows {
		return 0, 0, errors.NewDimensionError(op, rows, yRows, 0)
	}
	if yCols != 1 {
		return 0, 0, errors.NewValueError(op, "y must be a column vector")
	}
	if err := errors.CheckFinite(op, X); err != nil {
		return 0, 0, err
	}
	if err := errors.CheckFinite(op, y); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// CheckX validates a prediction input: non-empty and finite.
func CheckX(op string, X mat.Matrix) (rows, cols int, err error) {
	rows, cols = X.Dims()
	if rows == 0 || cols == 0 {
		return 0, 0, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	if err := errors.CheckFinite(op, X); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// Column copies the first column of m.
func Column(m mat.Matrix) []float64 {
	return mat.Col(nil, 0, m)
}

// ColumnVector copies the first column of m into a new VecDense.
func ColumnVector(m mat.Matrix) *mat.VecDense {
	col := Column(m)
	return mat.NewVecDense(len(col), col)
}
