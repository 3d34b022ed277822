package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jonwraymond/toolcheck/check"
)

// Metrics records evaluation metrics for checks.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordEvaluation records one check evaluation. Performance data of
	// coll is recorded as gauges; coll is ignored when err is non-nil.
	RecordEvaluation(ctx context.Context, meta CheckMeta, duration time.Duration, coll check.Collection, err error)
}

type metricsImpl struct {
	meter        metric.Meter
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
	perfGauge    metric.Float64Gauge
	stateGauge   metric.Int64Gauge
}

func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	totalCount, err := meter.Int64Counter(
		"check.eval.total",
		metric.WithDescription("Total number of check evaluations"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"check.eval.errors",
		metric.WithDescription("Total number of check evaluations that failed to produce a result"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"check.eval.duration_ms",
		metric.WithDescription("Check evaluation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	perfGauge, err := meter.Float64Gauge(
		"check.perf.value",
		metric.WithDescription("Last observed value of a performance data entry"),
	)
	if err != nil {
		return nil, err
	}

	stateGauge, err := meter.Int64Gauge(
		"check.state",
		metric.WithDescription("Exit code of the last evaluation (0 OK, 1 WARNING, 2 CRITICAL, 3 UNKNOWN)"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		totalCount:   totalCount,
		errorCount:   errorCount,
		durationHist: durationHist,
		perfGauge:    perfGauge,
		stateGauge:   stateGauge,
	}, nil
}

func (m *metricsImpl) RecordEvaluation(ctx context.Context, meta CheckMeta, duration time.Duration, coll check.Collection, err error) {
	attrs := meta.attributes()
	opt := metric.WithAttributes(attrs...)

	state := check.StateUnknown
	if err == nil {
		state = coll.State()
	}

	m.totalCount.Add(ctx, 1, metric.WithAttributes(
		append(attrs, attribute.String("check.state", state.String()))...,
	))
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
	m.stateGauge.Record(ctx, int64(state.ExitCode()), opt)

	if err != nil {
		return
	}
	for _, p := range coll.Metrics() {
		m.perfGauge.Record(ctx, p.Value, metric.WithAttributes(
			append(attrs,
				attribute.String("perf.label", p.Label),
				attribute.String("perf.unit", string(p.Unit)),
			)...,
		))
	}
}

type noopMetrics struct{}

func (m *noopMetrics) RecordEvaluation(ctx context.Context, meta CheckMeta, duration time.Duration, coll check.Collection, err error) {
}
