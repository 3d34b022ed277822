package health

import "errors"

var (
	// ErrCheckFailed indicates a checker panicked instead of returning a verdict.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout indicates a check did not finish before the deadline.
	ErrCheckTimeout = errors.New("health: check timeout")

	// ErrCheckerNotFound indicates a checker was not found.
	ErrCheckerNotFound = errors.New("health: checker not found")

	// ErrEmptyName indicates a checker was registered without a name.
	ErrEmptyName = errors.New("health: checker name is required")
)
