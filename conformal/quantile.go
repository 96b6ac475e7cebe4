package conformal

import (
	"math"
	"slices"

	"github.com/YuminosukeSato/mluno/pkg/errors"
)

// Quantile returns the p-quantile of values, interpolating linearly between
// order statistics: with s sorted ascending and h = (n-1)p,
//
//	q = s[⌊h⌋] + (h-⌊h⌋)(s[⌈h⌉] - s[⌊h⌋])
//
// values is not modified.
func Quantile(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.NewModelError("conformal.Quantile", "empty data", errors.ErrEmptyData)
	}
	if !(p >= 0 && p <= 1) {
		return 0, errors.NewValidationError("p", "must be in [0, 1]", p)
	}

	s := slices.Clone(values)
	slices.Sort(s)

	h := float64(len(s)-1) * p
	lo := math.Floor(h)
	hi := math.Ceil(h)
	a, b := s[int(lo)], s[int(hi)]
	return a + (h-lo)*(b-a), nil
}
