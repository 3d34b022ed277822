package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/jonwraymond/toolcheck/check"
)

// CheckMeta identifies a check for telemetry purposes.
type CheckMeta struct {
	ID        string // Fully qualified check ID (namespace.name or just name)
	Namespace string // Check namespace, e.g. "tls" (may be empty)
	Name      string // Check name (required)
	Target    string // Monitored target, e.g. "example.com:443" (optional)
}

// SpanName returns the deterministic span name for this check.
// Format: check.eval.<namespace>.<name> or check.eval.<name>
func (m CheckMeta) SpanName() string {
	if m.Namespace != "" {
		return "check.eval." + m.Namespace + "." + m.Name
	}
	return "check.eval." + m.Name
}

// CheckID returns the fully qualified check identifier.
func (m CheckMeta) CheckID() string {
	if m.ID != "" {
		return m.ID
	}
	if m.Namespace != "" {
		return m.Namespace + "." + m.Name
	}
	return m.Name
}

func (m CheckMeta) attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("check.id", m.CheckID()),
		attribute.String("check.name", m.Name),
	}
	if m.Namespace != "" {
		attrs = append(attrs, attribute.String("check.namespace", m.Namespace))
	}
	return attrs
}

// Tracer wraps OpenTelemetry tracing with check-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a check evaluation.
	StartSpan(ctx context.Context, meta CheckMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording the folded state and any error.
	EndSpan(span trace.Span, coll check.Collection, err error)
}

type tracerImpl struct {
	tracer trace.Tracer
}

func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

func (t *tracerImpl) StartSpan(ctx context.Context, meta CheckMeta) (context.Context, trace.Span) {
	attrs := meta.attributes()
	if meta.Target != "" {
		attrs = append(attrs, attribute.String("check.target", meta.Target))
	}
	attrs = append(attrs, attribute.Bool("check.error", false))

	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpan ends the span. A non-OK state is not a span error: the check ran
// and produced a verdict. Only evaluation failures mark the span as failed.
func (t *tracerImpl) EndSpan(span trace.Span, coll check.Collection, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("check.error", true))
		span.RecordError(err)
	} else {
		state := coll.State()
		span.SetAttributes(
			attribute.String("check.state", state.String()),
			attribute.Int("check.exit_code", state.ExitCode()),
			attribute.Int("check.results", coll.Len()),
		)
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

type noopTracer struct {
	noop trace.Tracer
}

func newNoopTracer() Tracer {
	return &noopTracer{noop: tracenoop.NewTracerProvider().Tracer("noop")}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta CheckMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, coll check.Collection, err error) {
	span.End()
}
