package observe_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonwraymond/toolcheck/check"
	"github.com/jonwraymond/toolcheck/observe"
)

func ExampleConfig_Validate() {
	cfg := observe.Config{
		ServiceName: "toolcheck",
		Tracing:     observe.TracingConfig{Enabled: true, Exporter: "stdout", SamplePct: 2},
	}
	err := cfg.Validate()
	fmt.Println(errors.Is(err, observe.ErrInvalidSamplePct))
	// Output: true
}

func ExampleCheckMeta_SpanName() {
	meta := observe.CheckMeta{Namespace: "tls", Name: "certificate"}
	fmt.Println(meta.SpanName())
	fmt.Println(meta.CheckID())
	// Output:
	// check.eval.tls.certificate
	// tls.certificate
}

func ExampleMiddleware_Wrap() {
	mw := observe.NewMiddleware(nil, nil, nil)

	levels := check.UpperLevels(check.Duration(time.Second), check.Duration(2*time.Second))
	args := check.LevelsCheckerArgs{Label: "latency", Unit: check.UnitSeconds}

	eval := mw.Wrap(func(ctx context.Context, meta observe.CheckMeta) (check.Collection, error) {
		res := levels.Check(check.Duration(1500*time.Millisecond), check.NewSummary("latency ok"), args)
		return check.NewCollection(res), nil
	})

	coll, err := eval(context.Background(), observe.CheckMeta{Name: "latency"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(coll.State())
	// Output: WARNING
}

func ExampleParseLogLevel() {
	fmt.Println(observe.ParseLogLevel("warn"))
	fmt.Println(observe.ParseLogLevel("unknown"))
	// Output:
	// warn
	// info
}
