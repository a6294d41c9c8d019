package roc

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input validation errors
	ErrShape             = errors.New("input must be a non-empty two-column numeric matrix")
	ErrInvalidLabel      = errors.New("labels must be 0 or 1")
	ErrOnlyHealthy       = errors.New("dataset contains only healthy subjects (all labels 0)")
	ErrOnlyUnhealthy     = errors.New("dataset contains only unhealthy subjects (all labels 1)")
	ErrSignificanceLevel = errors.New("significance level must be a real number strictly between 0 and 1")

	// Collaborator errors
	ErrMissingEstimator = errors.New("no ROC estimator configured: inject a ports.CurveEstimator before comparing")
)

// Error constructors with context
func NewShapeError(ds Dataset, reason string) error {
	return fmt.Errorf("%w: dataset %s %s", ErrShape, ds, reason)
}

func NewLabelError(ds Dataset, row int, value float64) error {
	return fmt.Errorf("%w: dataset %s row %d has label %g", ErrInvalidLabel, ds, row, value)
}

func NewOnlyHealthyError(ds Dataset) error {
	return fmt.Errorf("%w: dataset %s", ErrOnlyHealthy, ds)
}

func NewOnlyUnhealthyError(ds Dataset) error {
	return fmt.Errorf("%w: dataset %s", ErrOnlyUnhealthy, ds)
}

func NewSignificanceLevelError(alpha float64) error {
	return fmt.Errorf("%w: got %g", ErrSignificanceLevel, alpha)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrShape) ||
		errors.Is(err, ErrInvalidLabel) ||
		errors.Is(err, ErrOnlyHealthy) ||
		errors.Is(err, ErrOnlyUnhealthy) ||
		errors.Is(err, ErrSignificanceLevel)
}

func IsClassBalanceError(err error) bool {
	return errors.Is(err, ErrOnlyHealthy) || errors.Is(err, ErrOnlyUnhealthy)
}
