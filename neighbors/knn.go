// Package neighbors implements brute-force k-nearest-neighbours regression.
package neighbors

import (
	"fmt"

	"github.com/YuminosukeSato/mluno/core/model"
	"github.com/YuminosukeSato/mluno/core/parallel"
	"github.com/YuminosukeSato/mluno/pkg/errors"
	"github.com/YuminosukeSato/mluno/pkg/log"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	modelName                = "KNNRegressor"
	defaultK                 = 5
	defaultParallelThreshold = 256
)

// KNNRegressor predicts the mean target of the k training rows closest to a
// query in euclidean distance. Fit only stores the training set; all work
// happens in Predict.
type KNNRegressor struct {
	state *model.StateManager

	k int

	// training rows and targets, owned copies
	X *mat.Dense
	y []float64

	parallelThreshold int
	logger            log.Logger
}

// NewKNNRegressor creates a KNNRegressor with k = 5 unless WithK is given.
func NewKNNRegressor(opts ...Option) *KNNRegressor {
	knn := &KNNRegressor{
		state:             model.NewStateManager(),
		k:                 defaultK,
		parallelThreshold: defaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(knn)
	}
	if knn.logger == nil {
		knn.logger = log.GetLogger()
	}
	knn.logger = knn.logger.With(
		log.ModelNameKey, modelName,
		log.EstimatorIDKey, uuid.NewString(),
		log.NeighborsKey, knn.k,
	)
	return knn
}

// K returns the configured number of neighbours.
func (knn *KNNRegressor) K() int {
	return knn.k
}

// IsFitted reports whether Fit has succeeded.
func (knn *KNNRegressor) IsFitted() bool {
	return knn.state.IsFitted()
}

func (knn *KNNRegressor) String() string {
	return fmt.Sprintf("KNN Regression model with k = %d.", knn.k)
}

// Fit stores copies of X and y. k must be at least 1 and at most the number
// of training rows; a k larger than the training set is rejected with a
// NeighborhoodError rather than silently averaging fewer neighbours.
func (knn *KNNRegressor) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "KNNRegressor.Fit")

	knn.state.Reset()
	if knn.k < 1 {
		return errors.NewValidationError("k", "must be at least 1", knn.k)
	}
	r, c, err := model.CheckXY("KNNRegressor.Fit", X, y)
	if err != nil {
		return err
	}
	if knn.k > r {
		return errors.NewNeighborhoodError("KNNRegressor.Fit", knn.k, r)
	}

	knn.X = mat.DenseCopyOf(X)
	knn.y = model.Column(y)
	knn.state.SetFitted(c, r)

	knn.logger.Debug("fit",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, r,
		log.FeaturesKey, c,
	)
	return nil
}

// Predict returns the neighbour mean for every row of X, in order.
func (knn *KNNRegressor) Predict(X mat.Matrix) (_ mat.Matrix, err error) {
	defer errors.Recover(&err, "KNNRegressor.Predict")

	if err := knn.state.RequireFeatures(modelName, "Predict", X); err != nil {
		return nil, err
	}
	r, _, err := model.CheckX("KNNRegressor.Predict", X)
	if err != nil {
		return nil, err
	}

	out := make([]float64, r)
	parallel.ParallelizeWithThreshold(r, knn.parallelThreshold, func(start, end int) {
		nTrain, _ := knn.X.Dims()
		dist := make([]float64, nTrain)
		idx := make([]int, nTrain)
		neighbours := make([]float64, knn.k)
		for i := start; i < end; i++ {
			out[i] = knn.predictRow(mat.Row(nil, i, X), dist, idx, neighbours)
		}
	})

	knn.logger.Debug("predict",
		log.OperationKey, log.OperationPredict,
		log.PredsKey, r,
	)
	return mat.NewVecDense(r, out), nil
}

// predictRow uses caller-provided scratch buffers so each worker allocates
// once per chunk.
func (knn *KNNRegressor) predictRow(x, dist []float64, idx []int, neighbours []float64) float64 {
	for j := range dist {
		dist[j] = floats.Distance(x, knn.X.RawRowView(j), 2)
	}
	// stable: equal distances keep training order
	floats.ArgsortStable(dist, idx)
	for n := range neighbours {
		neighbours[n] = knn.y[idx[n]]
	}
	return stat.Mean(neighbours, nil)
}

// Neighbors returns the training indices of the k nearest rows to x, closest
// first, together with their distances.
func (knn *KNNRegressor) Neighbors(x []float64) ([]int, []float64, error) {
	if err := knn.state.RequireFitted(modelName, "Neighbors"); err != nil {
		return nil, nil, err
	}
	nTrain, nFeatures := knn.X.Dims()
	if len(x) != nFeatures {
		return nil, nil, errors.NewDimensionError("KNNRegressor.Neighbors", nFeatures, len(x), 1)
	}
	dist := make([]float64, nTrain)
	idx := make([]int, nTrain)
	for j := range dist {
		dist[j] = floats.Distance(x, knn.X.RawRowView(j), 2)
	}
	floats.ArgsortStable(dist, idx)
	return idx[:knn.k], dist[:knn.k], nil
}
