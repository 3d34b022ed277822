package health

import (
	"context"
	"time"

	"github.com/jonwraymond/toolcheck/check"
)

// Checker acquires a measurement and evaluates it.
//
// Contract:
// - Concurrency: Check may be called concurrently with itself.
// - Context: Check should return promptly once ctx is done.
// - Errors: acquisition failures are reported as entries in the collection.
type Checker interface {
	// Name returns the name of this checker.
	Name() string

	// Check performs the check and returns its results.
	Check(ctx context.Context) check.Collection
}

// CheckerFunc is an adapter to allow ordinary functions to be used as Checkers.
type CheckerFunc struct {
	name string
	fn   func(context.Context) check.Collection
}

// NewCheckerFunc creates a new CheckerFunc.
func NewCheckerFunc(name string, fn func(context.Context) check.Collection) *CheckerFunc {
	return &CheckerFunc{name: name, fn: fn}
}

// Name returns the name of this checker.
func (f *CheckerFunc) Name() string {
	return f.name
}

// Check performs the check.
func (f *CheckerFunc) Check(ctx context.Context) check.Collection {
	return f.fn(ctx)
}

// Result is the outcome of running one named checker.
type Result struct {
	// Name is the checker name.
	Name string

	// Collection holds the check results.
	Collection check.Collection

	// Duration is how long the check took.
	Duration time.Duration

	// Timestamp is when the check started.
	Timestamp time.Time

	// Error is set when the checker produced no verdict of its own
	// (timeout or panic). Collection then carries an UNKNOWN entry.
	Error error
}

// State returns the folded state of the result.
func (r Result) State() check.State {
	return r.Collection.State()
}

// Overall joins the collections of results into one, in order.
func Overall(results []Result) check.Collection {
	var coll check.Collection
	for _, r := range results {
		coll = coll.Join(r.Collection)
	}
	return coll
}
