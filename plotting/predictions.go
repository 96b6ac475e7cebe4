// Package plotting draws regression predictions, optionally with their
// conformal intervals, on gonum/plot.
package plotting

import (
	"image/color"
	"sort"

	"github.com/YuminosukeSato/mluno/core/model"
	"github.com/YuminosukeSato/mluno/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	// BandColor is light blue at 20% opacity.
	BandColor = color.NRGBA{R: 173, G: 216, B: 230, A: 51}
	// LineColor is dark blue.
	LineColor = color.NRGBA{R: 0, G: 0, B: 139, A: 255}
	// PointColor is used for the observed data.
	PointColor = color.NRGBA{R: 90, G: 90, B: 90, A: 255}
)

// Option configures PredictionPlot.
type Option func(*config)

type config struct {
	title     string
	intervals bool
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithIntervals draws the prediction interval band. The predictor must then
// implement model.IntervalPredictor.
func WithIntervals(on bool) Option {
	return func(c *config) {
		c.intervals = on
	}
}

// PredictionPlot scatters (X, y) and draws the predictions of predictor as a
// line over X sorted ascending. X must have exactly one feature. The caller
// saves the returned plot, e.g. p.Save(6*vg.Inch, 4*vg.Inch, "pred.png").
func PredictionPlot(X, y mat.Matrix, predictor model.Predictor, opts ...Option) (*plot.Plot, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	n, d := X.Dims()
	if n == 0 {
		return nil, errors.NewModelError("plotting.PredictionPlot", "empty data", errors.ErrEmptyData)
	}
	if d != 1 {
		return nil, errors.NewDimensionError("plotting.PredictionPlot", 1, d, 1)
	}
	if yr, _ := y.Dims(); yr != n {
		return nil, errors.NewDimensionError("plotting.PredictionPlot", n, yr, 0)
	}

	var ip model.IntervalPredictor
	if cfg.intervals {
		var ok bool
		if ip, ok = predictor.(model.IntervalPredictor); !ok {
			return nil, errors.NewValueError("plotting.PredictionPlot",
				"intervals requested but the predictor does not implement PredictInterval")
		}
	}

	sorted := sortedColumn(X)
	grid := mat.NewDense(n, 1, sorted)

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	if ip != nil {
		pred, lower, upper, err := ip.PredictInterval(grid)
		if err != nil {
			return nil, err
		}
		band, err := plotter.NewPolygon(bandOutline(sorted, lower, upper))
		if err != nil {
			return nil, errors.Wrap(err, "plotting.PredictionPlot: interval band")
		}
		band.Color = BandColor
		band.LineStyle.Width = 0
		p.Add(band)
		p.Legend.Add("interval", band)
		if err := addLine(p, sorted, pred); err != nil {
			return nil, err
		}
	} else {
		pred, err := predictor.Predict(grid)
		if err != nil {
			return nil, err
		}
		if err := addLine(p, sorted, pred); err != nil {
			return nil, err
		}
	}

	points := make(plotter.XYs, n)
	for i := range points {
		points[i].X = X.At(i, 0)
		points[i].Y = y.At(i, 0)
	}
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, errors.Wrap(err, "plotting.PredictionPlot: data")
	}
	scatter.GlyphStyle.Color = PointColor
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(scatter)
	p.Legend.Add("data", scatter)

	return p, nil
}

func addLine(p *plot.Plot, xs []float64, pred mat.Matrix) error {
	xys := make(plotter.XYs, len(xs))
	for i, x := range xs {
		xys[i].X = x
		xys[i].Y = pred.At(i, 0)
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return errors.Wrap(err, "plotting.PredictionPlot: prediction line")
	}
	line.LineStyle.Color = LineColor
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add("prediction", line)
	return nil
}

// bandOutline walks the lower bound left to right and the upper bound back.
func bandOutline(xs []float64, lower, upper *mat.VecDense) plotter.XYs {
	n := len(xs)
	out := make(plotter.XYs, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out, plotter.XY{X: xs[i], Y: lower.AtVec(i)})
	}
	for i := n - 1; i >= 0; i-- {
		out = append(out, plotter.XY{X: xs[i], Y: upper.AtVec(i)})
	}
	return out
}

func sortedColumn(X mat.Matrix) []float64 {
	xs := mat.Col(nil, 0, X)
	sort.Float64s(xs)
	return xs
}
