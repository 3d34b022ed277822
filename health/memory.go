package health

import (
	"context"
	"fmt"
	"runtime"

	"github.com/jonwraymond/toolcheck/check"
)

// Labels of the metrics emitted by MemoryChecker.
const (
	HeapUsageLabel  = "heap_usage"
	GoroutinesLabel = "goroutines"
)

// MemoryCheckerConfig configures the memory checker.
type MemoryCheckerConfig struct {
	// HeapUsage levels apply to heap in use as a percentage of heap obtained
	// from the OS. Default: warn/crit at 80/95.
	HeapUsage *check.LevelsChecker[check.Percent]

	// Goroutines levels apply to the number of live goroutines.
	// Nil means the count is reported without levels.
	Goroutines *check.LevelsChecker[check.Count]
}

// MemoryChecker reports heap usage and goroutine count of the running process.
type MemoryChecker struct {
	config MemoryCheckerConfig
}

// NewMemoryChecker creates a new memory checker.
func NewMemoryChecker(config MemoryCheckerConfig) *MemoryChecker {
	if config.HeapUsage == nil {
		levels := check.UpperLevels(check.Percent(80), check.Percent(95))
		config.HeapUsage = &levels
	}
	return &MemoryChecker{config: config}
}

// Name returns the name of this checker.
func (m *MemoryChecker) Name() string {
	return "memory"
}

// Check reads runtime memory statistics and evaluates them.
func (m *MemoryChecker) Check(ctx context.Context) check.Collection {
	if err := ctx.Err(); err != nil {
		return check.NewCollection(check.Unknown(check.NewSummary("memory: " + err.Error())))
	}

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	var usage check.Percent
	if stats.HeapSys > 0 {
		usage = check.Percent(float64(stats.HeapInuse) / float64(stats.HeapSys) * 100)
	}

	heap := m.config.HeapUsage.Check(usage,
		check.NewSummary(fmt.Sprintf("Heap usage: %.1f%%", float64(usage))),
		check.LevelsCheckerArgs{Label: HeapUsageLabel, Unit: check.UnitPercent, AlwaysEmit: true},
	)

	goroutines := check.Count(runtime.NumGoroutine())
	levels := check.LevelsChecker[check.Count]{}
	if m.config.Goroutines != nil {
		levels = *m.config.Goroutines
	}
	routines := levels.Check(goroutines,
		check.NewNotice(fmt.Sprintf("Goroutines: %d", goroutines)),
		check.LevelsCheckerArgs{Label: GoroutinesLabel, Unit: check.UnitNone, AlwaysEmit: true},
	)

	return check.NewCollection(heap, routines)
}

// ForceGC triggers a garbage collection.
// This is useful for tests or when you want to get accurate memory stats.
func (m *MemoryChecker) ForceGC() {
	runtime.GC()
}
