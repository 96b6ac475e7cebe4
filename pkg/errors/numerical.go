package errors

import (
	"fmt"
	"math"
)

// CheckNumericalStability returns a NumericalInstabilityError when values
// contain NaN or Inf.
func CheckNumericalStability(operation string, values []float64, iteration int) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(operation, values, iteration)
		}
	}
	return nil
}

// CheckFinite validates that every entry of an input matrix is a finite
// number. The first offending cell is reported in a ValueError.
func CheckFinite(op string, m interface {
	Dims() (int, int)
	At(int, int) float64
}) error {
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return NewValueError(op, fmt.Sprintf("input contains non-finite value %v at (%d, %d)", v, i, j))
			}
		}
	}
	return nil
}
