package report

import (
	"fmt"
	"strings"

	"github.com/atc0005/go-nagios"

	"github.com/jonwraymond/toolcheck/check"
)

// exitCodes maps states to go-nagios exit codes.
var exitCodes = map[check.State]int{
	check.StateOK:      nagios.StateOKExitCode,
	check.StateWarn:    nagios.StateWARNINGExitCode,
	check.StateCrit:    nagios.StateCRITICALExitCode,
	check.StateUnknown: nagios.StateUNKNOWNExitCode,
}

// Plugin returns a go-nagios plugin carrying coll: the headline as service
// output, detail lines as long service output, the folded state as exit code
// and every metric as performance data.
func Plugin(coll check.Collection) (*nagios.Plugin, error) {
	p := nagios.NewPlugin()
	if err := ApplyToPlugin(p, coll); err != nil {
		return nil, err
	}
	return p, nil
}

// ApplyToPlugin fills p from coll.
func ApplyToPlugin(p *nagios.Plugin, coll check.Collection) error {
	state := coll.State()

	code, ok := exitCodes[state]
	if !ok {
		code = nagios.StateUNKNOWNExitCode
	}
	p.ExitStatusCode = code

	p.ServiceOutput = state.String()
	if s := coll.Summary(); s != "" {
		p.ServiceOutput += " - " + s
	}
	p.LongServiceOutput = strings.Join(coll.Details(), "\n")

	metrics := coll.Metrics()
	if len(metrics) == 0 {
		return nil
	}

	perf := make([]nagios.PerformanceData, 0, len(metrics))
	for _, m := range metrics {
		perf = append(perf, PerformanceData(m))
	}
	// Units were validated by check.ParseUnit; go-nagios does not know GB.
	if err := p.AddPerfData(true, perf...); err != nil {
		return fmt.Errorf("report: add perf data: %w", err)
	}
	return nil
}

// PerformanceData converts one metric to its go-nagios form.
func PerformanceData(m check.Perf) nagios.PerformanceData {
	return nagios.PerformanceData{
		Label:             m.Label,
		Value:             check.Real(m.Value).String(),
		UnitOfMeasurement: string(m.Unit),
		Warn:              m.WarnString(),
		Crit:              m.CritString(),
	}
}
