package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type, e.g. "KNNRegressor".
	ModelNameKey = "model.name"

	// EstimatorIDKey is a per-instance identifier assigned at construction.
	EstimatorIDKey = "estimator.id"

	// OperationKey is one of the Operation* values below.
	OperationKey = "ml.operation"

	// ComponentKey names the package doing the work, e.g. "conformal".
	ComponentKey = "ml.component"
)

// Data shape.
const (
	SamplesKey    = "data.samples"
	FeaturesKey   = "data.features"
	RandomSeedKey = "config.random_seed"
)

// Hyperparameters and results.
const (
	NeighborsKey   = "hyperparams.k"
	AlphaKey       = "hyperparams.alpha"
	QuantileKey    = "conformal.quantile"
	CalibrationKey = "conformal.calibration_samples"
	PredsKey       = "preds.count"
	DurationMsKey  = "perf.duration_ms"
)

// Error context.
const (
	ErrorCodeKey = "error.code"
)

// Standard attribute values.
const (
	OperationFit             = "fit"
	OperationPredict         = "predict"
	OperationPredictInterval = "predict_interval"
	OperationScore           = "score"
	OperationGenerate        = "generate"
	OperationSplit           = "split"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorSingularMatrix    = "SINGULAR_MATRIX"
)
