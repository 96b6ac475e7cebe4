// Package errors provides the error taxonomy and warning system used across mluno.
//
// Every constructor attaches a stack trace through cockroachdb/errors, and every
// structured error implements zerolog.LogObjectMarshaler so it can be logged as an object.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("mluno-Warning: %v\n", w)
	}
	// set by pkg/log to avoid an import cycle
	zerologWarnFunc func(warning error)
)

// SetWarningHandler replaces the handler used by Warn when no zerolog
// backend is installed.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a structured warning sink. Passing nil removes it.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning. The zerolog sink wins over the plain handler.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warnings
//
// ===========================================================================

// CalibrationWarning is raised when the calibration set is too small for the
// requested significance level: with n scores and alpha < 1/(n+1) the finite
// sample guarantee would require an unbounded interval.
type CalibrationWarning struct {
	Samples int
	Alpha   float64
}

func (w *CalibrationWarning) Error() string {
	return fmt.Sprintf("calibration set of %d samples is too small for alpha=%g; need at least %d samples for the coverage guarantee",
		w.Samples, w.Alpha, minCalibrationSamples(w.Alpha))
}

// MarshalZerologObject adds the warning fields to a zerolog event.
func (w *CalibrationWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Int("samples", w.Samples).
		Float64("alpha", w.Alpha).
		Str("type", "CalibrationWarning")
}

// NewCalibrationWarning creates a CalibrationWarning.
func NewCalibrationWarning(samples int, alpha float64) *CalibrationWarning {
	return &CalibrationWarning{Samples: samples, Alpha: alpha}
}

func minCalibrationSamples(alpha float64) int {
	if alpha <= 0 {
		return 0
	}
	// smallest n with 1/(n+1) <= alpha
	n := int(1/alpha) - 1
	for 1/float64(n+1) > alpha {
		n++
	}
	return n
}

// UndefinedMetricWarning is raised when a metric degenerates and a fallback
// value is returned instead.
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %f due to %s.", w.Metric, w.Result, w.Condition)
}

// MarshalZerologObject adds the warning fields to a zerolog event.
func (w *UndefinedMetricWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("metric", w.Metric).
		Str("condition", w.Condition).
		Float64("result", w.Result).
		Str("type", "UndefinedMetricWarning")
}

// NewUndefinedMetricWarning creates an UndefinedMetricWarning.
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// ===========================================================================
//
//	Structured errors
//
// ===========================================================================

// NotFittedError is returned when a model is used before Fit. With
// Calibration set it reports an uncalibrated conformal wrapper.
type NotFittedError struct {
	ModelName   string
	Method      string
	Calibration bool
}

func (e *NotFittedError) Error() string {
	if e.Calibration {
		return fmt.Sprintf("mluno: %s: this model is not calibrated yet. Call Fit() before using %s()", e.ModelName, e.Method)
	}
	return fmt.Sprintf("mluno: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Bool("calibration", e.Calibration).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace.
func NewNotFittedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method})
}

// NewNotCalibratedError creates the calibration flavour of NotFittedError.
func NewNotCalibratedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method, Calibration: true})
}

// DimensionError reports a shape mismatch between inputs, or between the
// feature count seen at fit time and at predict time.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) axisName() string {
	if e.Axis == 0 {
		return "rows"
	}
	return "features"
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("mluno: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, e.axisName(), e.Expected, e.Got)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", e.axisName()).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// ValidationError is returned when a hyperparameter or option is out of range.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("mluno: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// NeighborhoodError is returned when more neighbours are requested than
// there are training samples.
type NeighborhoodError struct {
	Op       string
	K        int
	NSamples int
}

func (e *NeighborhoodError) Error() string {
	return fmt.Sprintf("mluno: %s: k=%d neighbours requested but only %d training samples are available", e.Op, e.K, e.NSamples)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *NeighborhoodError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("k", e.K).
		Int("n_samples", e.NSamples).
		Str("type", "NeighborhoodError")
}

// NewNeighborhoodError creates a NeighborhoodError with a stack trace.
func NewNeighborhoodError(op string, k, nSamples int) error {
	return errors.WithStack(&NeighborhoodError{Op: op, K: k, NSamples: nSamples})
}

// ValueError reports an argument with an inappropriate value.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("mluno: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	return errors.WithStack(&ValueError{Op: op, Message: message})
}

// ModelError is a general model failure, usually wrapping a sentinel.
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mluno: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("mluno: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError creates a ModelError with a stack trace.
func NewModelError(op, kind string, err error) error {
	return errors.WithStack(&ModelError{Op: op, Kind: kind, Err: err})
}

// NumericalInstabilityError reports NaN or Inf values produced by a computation.
type NumericalInstabilityError struct {
	Operation string
	Values    []float64
	Iteration int
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("mluno: numerical instability detected in %s at iteration %d. Values: [%s]",
		e.Operation, e.Iteration, valStr)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Floats64("values", e.Values).
		Int("iteration", e.Iteration).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError creates a NumericalInstabilityError with a stack trace.
func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	return errors.WithStack(&NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Iteration: iteration,
	})
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates an error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to err.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Sentinels
//
// ===========================================================================

var (
	// ErrEmptyData is returned for inputs without rows or columns.
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix is returned when the normal equations cannot be solved.
	ErrSingularMatrix = New("singular matrix")
)
