// Package observe provides observability primitives for check evaluation.
//
// It is a pure instrumentation library: it never evaluates anything itself
// and does no I/O beyond exporter setup. Callers wrap their evaluation
// functions with a Middleware to get a span, metrics and a log line per run:
//
//	obs, err := observe.NewObserver(ctx, cfg)
//	mw, err := observe.MiddlewareFromObserver(obs)
//	eval := mw.Wrap(func(ctx context.Context, meta observe.CheckMeta) (check.Collection, error) {
//	    return responsetime.Check(rt, levels), nil
//	})
//
// Performance data of each evaluated collection is recorded as gauges so the
// same thresholds feed both the plugin output and OpenTelemetry.
package observe
