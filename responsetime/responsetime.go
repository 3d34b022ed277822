// Package responsetime evaluates a measured response time against optional
// levels.
package responsetime

import (
	"fmt"
	"time"

	"github.com/jonwraymond/toolcheck/check"
)

// Label is the performance data label of the response time metric.
const Label = "overall_response_time"

var args = check.LevelsCheckerArgs{Label: Label, Unit: check.UnitSeconds}

// Config selects which dimensions are checked. A nil field is not configured.
type Config struct {
	ResponseTime *check.LevelsChecker[check.Duration]
}

// Check evaluates responseTime. The returned collection always holds exactly
// one entry: the evaluation when levels are configured, the OK placeholder
// otherwise.
func Check(responseTime time.Duration, cfg Config) check.Collection {
	return check.NewCollection(check.Map(checkResponseTime(responseTime, cfg.ResponseTime), check.Duration.Seconds))
}

func checkResponseTime(responseTime time.Duration, levels *check.LevelsChecker[check.Duration]) check.CheckResult[check.Duration] {
	if levels == nil {
		return check.Default[check.Duration]()
	}
	return levels.Check(
		check.Duration(responseTime),
		check.NewNotice(fmt.Sprintf("Response time: %d ms", responseTime.Milliseconds())),
		args,
	)
}
