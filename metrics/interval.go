package metrics

import (
	"github.com/YuminosukeSato/mluno/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Coverage は lower ≤ yTrue ≤ upper を満たす割合を返す（両端を含む）
func Coverage(yTrue, lower, upper *mat.VecDense) (float64, error) {
	n, err := checkPair("Coverage", yTrue, lower)
	if err != nil {
		return 0, err
	}
	if upper.Len() != n {
		return 0, errors.NewDimensionError("Coverage", n, upper.Len(), 0)
	}

	covered := 0
	for i := 0; i < n; i++ {
		y := yTrue.AtVec(i)
		if lower.AtVec(i) <= y && y <= upper.AtVec(i) {
			covered++
		}
	}
	return float64(covered) / float64(n), nil
}

// Sharpness は区間幅 upper - lower の平均を返す
func Sharpness(lower, upper *mat.VecDense) (float64, error) {
	n, err := checkPair("Sharpness", lower, upper)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += upper.AtVec(i) - lower.AtVec(i)
	}
	return sum / float64(n), nil
}
