package conformal

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/mluno/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantile(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		p      float64
		want   float64
	}{
		{"median even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"minimum", []float64{4, 1, 3, 2}, 0, 1},
		{"maximum", []float64{4, 1, 3, 2}, 1, 4},
		{"interpolated", []float64{3, 1, 2}, 0.95, 2.9},
		{"exact order statistic", []float64{10, 30, 20, 40, 50}, 0.75, 40},
		{"single value", []float64{7}, 0.3, 7},
		{"ties", []float64{2, 2, 2, 5}, 0.5, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Quantile(tt.values, tt.p)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestQuantile_DoesNotModifyInput(t *testing.T) {
	values := []float64{3, 1, 2}
	_, err := Quantile(values, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestQuantile_Monotone(t *testing.T) {
	values := []float64{0.3, 2.1, 0.7, 1.5, 0.1, 0.9, 3.3}
	prev := math.Inf(-1)
	for i := 0; i <= 20; i++ {
		q, err := Quantile(values, float64(i)/20)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, q, prev)
		prev = q
	}
}

func TestQuantile_Errors(t *testing.T) {
	_, err := Quantile(nil, 0.5)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))

	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := Quantile([]float64{1, 2}, p)
		var valErr *errors.ValidationError
		assert.True(t, errors.As(err, &valErr), "p=%v", p)
	}
}
