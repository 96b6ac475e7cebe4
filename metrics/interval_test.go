package metrics

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/mluno/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func TestCoverage(t *testing.T) {
	tests := []struct {
		name         string
		y, low, high []float64
		want         float64
	}{
		{"two of three", []float64{10, 20, 30}, []float64{9, 19, 31}, []float64{11, 21, 29}, 2.0 / 3.0},
		{"bounds inclusive", []float64{1, 2}, []float64{1, 0}, []float64{3, 2}, 1},
		{"none covered", []float64{5, 5}, []float64{6, 0}, []float64{7, 4}, 0},
		{"zero width hit", []float64{4}, []float64{4}, []float64{4}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coverage(vec(tt.y...), vec(tt.low...), vec(tt.high...))
			if err != nil {
				t.Fatalf("Coverage() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Coverage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoverage_Errors(t *testing.T) {
	var dimErr *errors.DimensionError
	if _, err := Coverage(vec(1, 2), vec(0, 0), vec(3)); !errors.As(err, &dimErr) {
		t.Errorf("expected DimensionError for upper, got %v", err)
	}
	if _, err := Coverage(vec(1, 2), vec(0), vec(3, 3)); !errors.As(err, &dimErr) {
		t.Errorf("expected DimensionError for lower, got %v", err)
	}
	var valErr *errors.ValueError
	if _, err := Coverage(&mat.VecDense{}, &mat.VecDense{}, &mat.VecDense{}); !errors.As(err, &valErr) {
		t.Errorf("expected ValueError for empty input, got %v", err)
	}
}

func TestSharpness(t *testing.T) {
	got, err := Sharpness(vec(9, 19, 31), vec(11, 21, 29))
	if err != nil {
		t.Fatalf("Sharpness() error = %v", err)
	}
	if math.Abs(got-2.0/3.0) > 1e-12 {
		t.Errorf("Sharpness() = %v, want %v", got, 2.0/3.0)
	}

	got, err = Sharpness(vec(-1, 0, 1), vec(1, 2, 3))
	if err != nil {
		t.Fatalf("Sharpness() error = %v", err)
	}
	if got != 2 {
		t.Errorf("Sharpness() = %v, want 2", got)
	}

	if _, err := Sharpness(vec(1), vec(1, 2)); err == nil {
		t.Error("expected error for length mismatch")
	}
}
