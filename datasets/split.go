package datasets

import (
	"math"
	"math/rand/v2"

	"github.com/YuminosukeSato/mluno/core/model"
	"github.com/YuminosukeSato/mluno/pkg/errors"
	"github.com/YuminosukeSato/mluno/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// Partition is the result of Split. TrainIndex and TestIndex hold the
// original row numbers in the order they were placed.
type Partition struct {
	XTrain *mat.Dense
	XTest  *mat.Dense
	YTrain *mat.VecDense
	YTest  *mat.VecDense

	TrainIndex []int
	TestIndex  []int
}

// Split shuffles the rows of (X, y) and holds out floor(n*holdout) of them
// as the test part. The first permuted indices go to the test part and the
// rest to training, each in permutation order. Both parts must be non-empty.
func Split(X, y mat.Matrix, opts ...Option) (*Partition, error) {
	cfg := newConfig(0, 0, opts)

	n, _, err := model.CheckXY("datasets.Split", X, y)
	if err != nil {
		return nil, err
	}
	if !(cfg.holdout > 0 && cfg.holdout < 1) {
		return nil, errors.NewValidationError("holdout", "must be in the open interval (0, 1)", cfg.holdout)
	}
	nTest := int(math.Floor(float64(n) * cfg.holdout))
	if nTest == 0 || nTest == n {
		return nil, errors.NewValidationError("holdout",
			"leaves an empty train or test part for this number of rows", cfg.holdout)
	}

	cfg.resolveSeed()
	perm := rand.New(rand.NewPCG(cfg.seed, cfg.seed)).Perm(n)

	part := &Partition{
		TestIndex:  perm[:nTest],
		TrainIndex: perm[nTest:],
	}
	part.XTest, part.YTest = takeRows(X, y, part.TestIndex)
	part.XTrain, part.YTrain = takeRows(X, y, part.TrainIndex)

	cfg.logger.Debug("split",
		log.OperationKey, log.OperationSplit,
		log.SamplesKey, n,
		log.RandomSeedKey, cfg.seed,
	)
	return part, nil
}

func takeRows(X, y mat.Matrix, rows []int) (*mat.Dense, *mat.VecDense) {
	_, c := X.Dims()
	xs := mat.NewDense(len(rows), c, nil)
	ys := mat.NewVecDense(len(rows), nil)
	for i, r := range rows {
		for j := 0; j < c; j++ {
			xs.Set(i, j, X.At(r, j))
		}
		ys.SetVec(i, y.At(r, 0))
	}
	return xs, ys
}
