package observe

import (
	"context"
	"io"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/jonwraymond/toolcheck/check"
)

func BenchmarkLogger_Info(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard).WithCheck(CheckMeta{Namespace: "tls", Name: "certificate"})
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info(ctx, "check evaluation completed", Field{Key: "duration_ms", Value: 12.0})
	}
}

func BenchmarkLogger_LevelFiltering(b *testing.B) {
	logger := NewLoggerWithWriter("error", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug(ctx, "filtered")
	}
}

func BenchmarkMetrics_RecordEvaluation(b *testing.B) {
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader()))
	m, err := newMetrics(mp.Meter("bench"))
	if err != nil {
		b.Fatal(err)
	}
	coll := warnCollection()
	meta := CheckMeta{Name: "disk"}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.RecordEvaluation(ctx, meta, time.Millisecond, coll, nil)
	}
}

func BenchmarkMiddleware_Wrap(b *testing.B) {
	mw := NewMiddleware(nil, nil, nil)
	eval := mw.Wrap(func(ctx context.Context, meta CheckMeta) (check.Collection, error) {
		return check.Collection{}, nil
	})
	meta := CheckMeta{Name: "bench"}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = eval(ctx, meta)
	}
}
