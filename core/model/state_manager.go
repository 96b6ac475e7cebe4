package model

import (
	"sync"

	"github.com/YuminosukeSato/mluno/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// EstimatorState is the lifecycle state of an estimator.
type EstimatorState int

const (
	// NotFitted is the state before the first successful Fit.
	NotFitted EstimatorState = iota
	// Fitted is entered by a successful Fit and left by Reset.
	Fitted
)

func (s EstimatorState) String() string {
	if s == Fitted {
		return "fitted"
	}
	return "not_fitted"
}

// StateManager tracks the fitted state and the training dimensions of an
// estimator. It is embedded by pointer so that estimators stay copy-safe.
type StateManager struct {
	mu        sync.RWMutex
	state     EstimatorState
	nFeatures int
	nSamples  int
}

// NewStateManager creates a StateManager in the NotFitted state.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// State returns the current lifecycle state.
func (s *StateManager) State() EstimatorState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsFitted returns whether the estimator has been fitted.
func (s *StateManager) IsFitted() bool {
	return s.State() == Fitted
}

// SetFitted records a successful fit on nSamples rows of nFeatures columns.
func (s *StateManager) SetFitted(nFeatures, nSamples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Fitted
	s.nFeatures = nFeatures
	s.nSamples = nSamples
}

// Reset returns to NotFitted and forgets the training dimensions.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = NotFitted
	s.nFeatures = 0
	s.nSamples = 0
}

// Dimensions returns the number of features and samples seen by Fit.
func (s *StateManager) Dimensions() (nFeatures, nSamples int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nFeatures, s.nSamples
}

// RequireFitted returns a NotFittedError naming modelName and method when
// the estimator is not fitted.
func (s *StateManager) RequireFitted(modelName, method string) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError(modelName, method)
	}
	return nil
}

// RequireFeatures returns a NotFittedError before fit, or a DimensionError
// when X does not have the feature count seen at fit time.
func (s *StateManager) RequireFeatures(modelName, method string, X mat.Matrix) error {
	if err := s.RequireFitted(modelName, method); err != nil {
		return err
	}
	nFeatures, _ := s.Dimensions()
	if _, c := X.Dims(); c != nFeatures {
		return errors.NewDimensionError(modelName+"."+method, nFeatures, c, 1)
	}
	return nil
}
