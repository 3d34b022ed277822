package health

import (
	"context"
	"testing"

	"github.com/jonwraymond/toolcheck/check"
)

func TestNewMemoryChecker_Defaults(t *testing.T) {
	m := NewMemoryChecker(MemoryCheckerConfig{})

	w, ok := m.config.HeapUsage.Warn().Get()
	if !ok || w != 80 {
		t.Errorf("default warn = %v, want 80", w)
	}
	c, ok := m.config.HeapUsage.Crit().Get()
	if !ok || c != 95 {
		t.Errorf("default crit = %v, want 95", c)
	}
	if m.Name() != "memory" {
		t.Errorf("Name() = %q, want 'memory'", m.Name())
	}
}

func TestMemoryChecker_EmitsMetrics(t *testing.T) {
	m := NewMemoryChecker(MemoryCheckerConfig{})
	m.ForceGC()

	coll := m.Check(context.Background())
	if coll.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", coll.Len())
	}

	metrics := coll.Metrics()
	if len(metrics) != 2 {
		t.Fatalf("expected 2 metrics, got %d", len(metrics))
	}
	if metrics[0].Label != HeapUsageLabel || metrics[0].Unit != check.UnitPercent {
		t.Errorf("unexpected heap metric %+v", metrics[0])
	}
	if metrics[1].Label != GoroutinesLabel || metrics[1].Value < 1 {
		t.Errorf("unexpected goroutine metric %+v", metrics[1])
	}
	if metrics[1].Warn.IsSet() || metrics[1].Crit.IsSet() {
		t.Error("goroutine metric should carry no levels by default")
	}
}

func TestMemoryChecker_GoroutineLevels(t *testing.T) {
	levels := check.UpperLevels(check.Count(1), check.Count(2))
	// At least the test goroutine and the runtime's are live.
	m := NewMemoryChecker(MemoryCheckerConfig{Goroutines: &levels})

	coll := m.Check(context.Background())
	if coll.State() != check.StateCrit {
		t.Errorf("State() = %v, want CRITICAL", coll.State())
	}
}

func TestMemoryChecker_HeapCritical(t *testing.T) {
	levels := check.UpperLevels(check.Percent(0), check.Percent(0))
	m := NewMemoryChecker(MemoryCheckerConfig{HeapUsage: &levels})

	coll := m.Check(context.Background())
	if coll.State() != check.StateCrit {
		t.Errorf("State() = %v, want CRITICAL", coll.State())
	}
}

func TestMemoryChecker_ContextCancelled(t *testing.T) {
	m := NewMemoryChecker(MemoryCheckerConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	coll := m.Check(ctx)
	if coll.State() != check.StateUnknown {
		t.Errorf("State() = %v, want UNKNOWN", coll.State())
	}
}
