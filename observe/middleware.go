package observe

import (
	"context"
	"time"

	"github.com/jonwraymond/toolcheck/check"
)

// EvaluateFunc is the signature for check evaluation functions.
// A returned error means no verdict could be produced at all; threshold
// breaches are reported through the Collection state instead.
type EvaluateFunc func(ctx context.Context, meta CheckMeta) (check.Collection, error)

// Middleware wraps check evaluation with observability (tracing, metrics, logging).
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe EvaluateFunc.
//   - Context: Propagates context through tracing spans.
//   - Errors: Errors from wrapped function are recorded and propagated unchanged.
//   - Ownership: the returned Collection is passed through without modification.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability components.
// Nil components are replaced with no-op implementations.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = newNoopTracer()
	}
	if metrics == nil {
		metrics = &noopMetrics{}
	}
	if logger == nil {
		logger = NopLogger()
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps an EvaluateFunc with tracing, metrics, and logging.
func (m *Middleware) Wrap(fn EvaluateFunc) EvaluateFunc {
	return func(ctx context.Context, meta CheckMeta) (check.Collection, error) {
		if meta.Name == "" {
			return check.Collection{}, ErrMissingCheckName
		}

		ctx, span := m.tracer.StartSpan(ctx, meta)

		start := time.Now()
		coll, err := fn(ctx, meta)
		duration := time.Since(start)

		m.tracer.EndSpan(span, coll, err)
		m.metrics.RecordEvaluation(ctx, meta, duration, coll, err)

		logger := m.logger.WithCheck(meta)
		fields := []Field{
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
		}

		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			logger.Error(ctx, "check evaluation failed", fields...)
			return coll, err
		}

		state := coll.State()
		fields = append(fields,
			Field{Key: "state", Value: state.String()},
			Field{Key: "summary", Value: coll.Summary()},
		)
		if state == check.StateOK {
			logger.Info(ctx, "check evaluation completed", fields...)
		} else {
			logger.Warn(ctx, "check evaluation completed", fields...)
		}
		return coll, nil
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(newTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
