package health

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/toolcheck/check"
	"github.com/jonwraymond/toolcheck/observe"
)

// AggregatorConfig configures the aggregator.
type AggregatorConfig struct {
	// Timeout bounds each CheckAll call.
	// Default: 10 seconds
	Timeout time.Duration

	// Parallel runs checks concurrently when true.
	// Default: true
	Parallel bool

	// MaxConcurrency limits parallel checks. Zero means no limit.
	MaxConcurrency int

	// Namespace is reported as CheckMeta.Namespace to the middleware.
	Namespace string

	// Middleware, when set, wraps every check with tracing, metrics and logging.
	Middleware *observe.Middleware
}

// Aggregator runs registered checkers and combines their results.
type Aggregator struct {
	config   AggregatorConfig
	mu       sync.RWMutex
	checkers map[string]Checker
	order    []string // Maintains registration order
}

// NewAggregator creates a new aggregator.
func NewAggregator(config ...AggregatorConfig) *Aggregator {
	cfg := AggregatorConfig{
		Timeout:  10 * time.Second,
		Parallel: true,
	}
	if len(config) > 0 {
		cfg = config[0]
		if cfg.Timeout <= 0 {
			cfg.Timeout = 10 * time.Second
		}
	}

	return &Aggregator{
		config:   cfg,
		checkers: make(map[string]Checker),
	}
}

// Register adds a checker under its Name. Registering a name twice replaces
// the checker but keeps its first position.
func (a *Aggregator) Register(checker Checker) error {
	name := checker.Name()
	if name == "" {
		return ErrEmptyName
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.checkers[name]; !exists {
		a.order = append(a.order, name)
	}
	a.checkers[name] = checker
	return nil
}

// Unregister removes a checker.
func (a *Aggregator) Unregister(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.checkers, name)
	a.order = slices.DeleteFunc(a.order, func(n string) bool { return n == name })
}

// CheckerNames returns the names of all registered checkers in registration order.
func (a *Aggregator) CheckerNames() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return slices.Clone(a.order)
}

// Check runs a single named checker.
func (a *Aggregator) Check(ctx context.Context, name string) (Result, error) {
	a.mu.RLock()
	checker, ok := a.checkers[name]
	a.mu.RUnlock()

	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrCheckerNotFound, name)
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	return a.runCheck(ctx, name, checker), nil
}

// CheckAll runs all registered checkers and returns their results in
// registration order.
func (a *Aggregator) CheckAll(ctx context.Context) []Result {
	a.mu.RLock()
	names := slices.Clone(a.order)
	checkers := make([]Checker, len(names))
	for i, name := range names {
		checkers[i] = a.checkers[name]
	}
	a.mu.RUnlock()

	results := make([]Result, len(names))
	if len(names) == 0 {
		return results
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	if !a.config.Parallel {
		for i := range names {
			results[i] = a.runCheck(ctx, names[i], checkers[i])
		}
		return results
	}

	var g errgroup.Group
	if a.config.MaxConcurrency > 0 {
		g.SetLimit(a.config.MaxConcurrency)
	}
	for i := range names {
		g.Go(func() error {
			results[i] = a.runCheck(ctx, names[i], checkers[i])
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (a *Aggregator) runCheck(ctx context.Context, name string, checker Checker) Result {
	start := time.Now()

	eval := func(ctx context.Context, _ observe.CheckMeta) (check.Collection, error) {
		return evaluate(ctx, checker)
	}
	if a.config.Middleware != nil {
		eval = a.config.Middleware.Wrap(eval)
	}

	coll, err := eval(ctx, observe.CheckMeta{Namespace: a.config.Namespace, Name: name})
	if err != nil {
		coll = check.NewCollection(check.Unknown(check.NewSummary(failureText(err))))
	}

	return Result{
		Name:       name,
		Collection: coll,
		Duration:   time.Since(start),
		Timestamp:  start,
		Error:      err,
	}
}

// evaluate runs checker until it returns or ctx is done. A checker that
// ignores ctx keeps running in its goroutine; its result is discarded.
func evaluate(ctx context.Context, checker Checker) (check.Collection, error) {
	type outcome struct {
		coll check.Collection
		err  error
	}
	ch := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{err: fmt.Errorf("%w: panic: %v", ErrCheckFailed, r)}
			}
		}()
		ch <- outcome{coll: checker.Check(ctx)}
	}()

	select {
	case o := <-ch:
		return o.coll, o.err
	case <-ctx.Done():
		return check.Collection{}, ErrCheckTimeout
	}
}

func failureText(err error) string {
	if errors.Is(err, ErrCheckTimeout) {
		return "check timed out"
	}
	return err.Error()
}

// Checker returns the aggregator as a single Checker whose collection joins
// every registered check.
func (a *Aggregator) Checker() Checker {
	return &aggregatorChecker{agg: a}
}

type aggregatorChecker struct {
	agg *Aggregator
}

func (c *aggregatorChecker) Name() string {
	return "aggregate"
}

func (c *aggregatorChecker) Check(ctx context.Context) check.Collection {
	return Overall(c.agg.CheckAll(ctx))
}
