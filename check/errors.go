package check

import (
	"errors"
	"fmt"
)

// Construction errors.
var (
	// ErrInvalidUnit indicates a unit string outside the recognized grammar.
	ErrInvalidUnit = errors.New("check: invalid unit")

	// ErrEmptyLabel indicates a metric label was not provided.
	ErrEmptyLabel = errors.New("check: label is required")

	// ErrInvalidLevels indicates the warning bound is already a critical breach.
	ErrInvalidLevels = errors.New("check: warning level beyond critical level")

	// ErrInvalidDirection indicates an unknown comparison direction.
	ErrInvalidDirection = errors.New("check: invalid direction")
)

// DimensionError reports which dimension of a configuration failed to build.
type DimensionError struct {
	Dimension string
	Err       error
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("check: dimension %q: %v", e.Dimension, e.Err)
}

// Unwrap returns the underlying error.
func (e *DimensionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a DimensionError for the same dimension.
// A DimensionError with an empty Dimension matches any dimension.
func (e *DimensionError) Is(target error) bool {
	t, ok := target.(*DimensionError)
	if !ok {
		return false
	}
	return t.Dimension == "" || t.Dimension == e.Dimension
}

// NewDimensionError wraps err with the name of the dimension it belongs to.
// It returns nil when err is nil.
func NewDimensionError(dimension string, err error) error {
	if err == nil {
		return nil
	}
	return &DimensionError{Dimension: dimension, Err: err}
}
