package health_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/jonwraymond/toolcheck/check"
	"github.com/jonwraymond/toolcheck/health"
)

func ExampleNewCheckerFunc() {
	levels := check.UpperLevels(check.Percent(80), check.Percent(90))
	args := check.LevelsCheckerArgs{Label: "disk_used", Unit: check.UnitPercent}

	disk := health.NewCheckerFunc("disk", func(ctx context.Context) check.Collection {
		used := check.Percent(42)
		return check.NewCollection(levels.Check(used, check.NewSummary("Disk used: "+used.String()), args))
	})

	fmt.Println(disk.Check(context.Background()))
	// Output:
	// OK - Disk used: 42% | disk_used=42%;80;90
	// Disk used: 42%
}

func ExampleAggregator_CheckAll() {
	agg := health.NewAggregator(health.AggregatorConfig{Timeout: time.Second})
	_ = agg.Register(health.NewCheckerFunc("api", func(ctx context.Context) check.Collection {
		return check.NewCollection(check.OK(check.NewSummary("api reachable")))
	}))
	_ = agg.Register(health.NewCheckerFunc("queue", func(ctx context.Context) check.Collection {
		return check.NewCollection(check.Warn(check.NewSummary("queue backlog")))
	}))

	results := agg.CheckAll(context.Background())
	for _, r := range results {
		fmt.Println(r.Name, r.State())
	}
	fmt.Println(health.Overall(results))
	// Output:
	// api OK
	// queue WARNING
	// WARNING - api reachable, queue backlog (!)
	// api reachable
	// queue backlog (!)
}

func ExampleStatusHandler() {
	agg := health.NewAggregator()
	_ = agg.Register(health.NewCheckerFunc("cert", func(ctx context.Context) check.Collection {
		return check.NewCollection(check.Crit(check.NewSummary("certificate expired")))
	}))

	rec := httptest.NewRecorder()
	health.StatusHandler(agg)(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	fmt.Println(rec.Code)
	// Output: 503
}
