package health

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonwraymond/toolcheck/check"
	"github.com/jonwraymond/toolcheck/observe"
)

func fixed(name string, entries ...check.Reportable) *CheckerFunc {
	return NewCheckerFunc(name, func(ctx context.Context) check.Collection {
		return check.NewCollection(entries...)
	})
}

func TestNewAggregator(t *testing.T) {
	agg := NewAggregator()

	if agg.config.Timeout != 10*time.Second {
		t.Errorf("Default timeout = %v, want 10s", agg.config.Timeout)
	}
	if !agg.config.Parallel {
		t.Error("Default Parallel should be true")
	}
}

func TestNewAggregator_WithConfig(t *testing.T) {
	agg := NewAggregator(AggregatorConfig{Timeout: 5 * time.Second})
	if agg.config.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", agg.config.Timeout)
	}
	if agg.config.Parallel {
		t.Error("Parallel should be false")
	}

	agg = NewAggregator(AggregatorConfig{Timeout: -1})
	if agg.config.Timeout != 10*time.Second {
		t.Errorf("non-positive timeout should default, got %v", agg.config.Timeout)
	}
}

func TestAggregator_RegisterOrder(t *testing.T) {
	agg := NewAggregator()
	for _, name := range []string{"c", "a", "b"} {
		if err := agg.Register(fixed(name)); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}
	// Re-registering keeps its first position.
	_ = agg.Register(fixed("c"))

	if got := strings.Join(agg.CheckerNames(), ","); got != "c,a,b" {
		t.Errorf("CheckerNames() = %v, want c,a,b", got)
	}

	agg.Unregister("a")
	if got := strings.Join(agg.CheckerNames(), ","); got != "c,b" {
		t.Errorf("after Unregister = %v, want c,b", got)
	}
}

func TestAggregator_RegisterEmptyName(t *testing.T) {
	agg := NewAggregator()
	if err := agg.Register(fixed("")); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Register() error = %v, want ErrEmptyName", err)
	}
}

func TestAggregator_Check(t *testing.T) {
	agg := NewAggregator()
	_ = agg.Register(fixed("test", check.OK(check.NewSummary("ok"))))

	result, err := agg.Check(context.Background(), "test")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if result.Name != "test" || result.State() != check.StateOK {
		t.Errorf("unexpected result %+v", result)
	}
	if result.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestAggregator_CheckNotFound(t *testing.T) {
	agg := NewAggregator()
	_, err := agg.Check(context.Background(), "missing")
	if !errors.Is(err, ErrCheckerNotFound) {
		t.Errorf("Check() error = %v, want ErrCheckerNotFound", err)
	}
}

func TestAggregator_CheckAllOrder(t *testing.T) {
	for _, parallel := range []bool{true, false} {
		agg := NewAggregator(AggregatorConfig{Parallel: parallel})
		_ = agg.Register(NewCheckerFunc("slow", func(ctx context.Context) check.Collection {
			time.Sleep(20 * time.Millisecond)
			return check.NewCollection(check.Warn(check.NewSummary("slow")))
		}))
		_ = agg.Register(fixed("fast", check.OK(check.NewSummary("fast"))))

		results := agg.CheckAll(context.Background())
		if len(results) != 2 {
			t.Fatalf("parallel=%v: expected 2 results, got %d", parallel, len(results))
		}
		if results[0].Name != "slow" || results[1].Name != "fast" {
			t.Errorf("parallel=%v: results out of registration order: %s, %s", parallel, results[0].Name, results[1].Name)
		}
		if got := Overall(results).State(); got != check.StateWarn {
			t.Errorf("parallel=%v: overall = %v, want WARNING", parallel, got)
		}
	}
}

func TestAggregator_CheckAllEmpty(t *testing.T) {
	results := NewAggregator().CheckAll(context.Background())
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
	if Overall(results).State() != check.StateOK {
		t.Error("overall of nothing should be OK")
	}
}

func TestAggregator_Timeout(t *testing.T) {
	agg := NewAggregator(AggregatorConfig{Timeout: 20 * time.Millisecond, Parallel: true})
	_ = agg.Register(NewCheckerFunc("hang", func(ctx context.Context) check.Collection {
		<-ctx.Done()
		time.Sleep(10 * time.Millisecond)
		return check.NewCollection(check.OK(check.NewSummary("late")))
	}))

	results := agg.CheckAll(context.Background())
	r := results[0]
	if !errors.Is(r.Error, ErrCheckTimeout) {
		t.Errorf("Error = %v, want ErrCheckTimeout", r.Error)
	}
	if r.State() != check.StateUnknown {
		t.Errorf("State() = %v, want UNKNOWN", r.State())
	}
	if got := r.Collection.Summary(); got != "check timed out (?)" {
		t.Errorf("Summary() = %q", got)
	}
}

func TestAggregator_Panic(t *testing.T) {
	agg := NewAggregator()
	_ = agg.Register(NewCheckerFunc("boom", func(ctx context.Context) check.Collection {
		panic("nil map")
	}))

	r := agg.CheckAll(context.Background())[0]
	if !errors.Is(r.Error, ErrCheckFailed) {
		t.Errorf("Error = %v, want ErrCheckFailed", r.Error)
	}
	if r.State() != check.StateUnknown {
		t.Errorf("State() = %v, want UNKNOWN", r.State())
	}
}

func TestAggregator_MaxConcurrency(t *testing.T) {
	var running, peak atomic.Int32
	agg := NewAggregator(AggregatorConfig{Parallel: true, MaxConcurrency: 1})
	for _, name := range []string{"a", "b", "c"} {
		_ = agg.Register(NewCheckerFunc(name, func(ctx context.Context) check.Collection {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return check.Collection{}
		}))
	}

	agg.CheckAll(context.Background())
	if peak.Load() != 1 {
		t.Errorf("peak concurrency = %d, want 1", peak.Load())
	}
}

func TestAggregator_Middleware(t *testing.T) {
	var names []string
	mw := observe.NewMiddleware(nil, nil, nil)
	agg := NewAggregator(AggregatorConfig{Namespace: "tls", Middleware: mw})
	_ = agg.Register(NewCheckerFunc("cert", func(ctx context.Context) check.Collection {
		names = append(names, "cert")
		return check.NewCollection(check.Crit(check.NewSummary("expired")))
	}))

	results := agg.CheckAll(context.Background())
	if len(names) != 1 {
		t.Fatalf("checker ran %d times, want 1", len(names))
	}
	if results[0].State() != check.StateCrit {
		t.Errorf("State() = %v, want CRITICAL", results[0].State())
	}
}

func TestAggregator_AsChecker(t *testing.T) {
	agg := NewAggregator()
	_ = agg.Register(fixed("a", check.OK(check.NewSummary("a"))))
	_ = agg.Register(fixed("b", check.Crit(check.NewSummary("b"))))

	c := agg.Checker()
	if c.Name() != "aggregate" {
		t.Errorf("Name() = %q, want 'aggregate'", c.Name())
	}
	coll := c.Check(context.Background())
	if coll.Len() != 2 || coll.State() != check.StateCrit {
		t.Errorf("unexpected aggregate %q", coll.String())
	}
}
