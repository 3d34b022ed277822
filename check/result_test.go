package check

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	got := Default[Duration]()
	if got.State != StateOK {
		t.Errorf("State = %v, want OK", got.State)
	}
	if got.Output.Text != "" {
		t.Errorf("Output.Text = %q, want empty", got.Output.Text)
	}
	if got.Metric != nil {
		t.Error("Metric should be nil")
	}

	e := got.Entry()
	if e.Perf != nil || e.Text() != "" {
		t.Errorf("Entry() = %+v, want empty OK entry", e)
	}
}

func TestMap(t *testing.T) {
	args, _ := NewLevelsCheckerArgs("overall_response_time", "s")
	res := UpperLevels(Duration(time.Second), Duration(2*time.Second)).
		Check(Duration(1500*time.Millisecond), NewNotice("rt"), args)

	got := Map(res, Duration.Seconds)

	if got.State != res.State || got.Output != res.Output {
		t.Errorf("Map changed state/output: %+v", got)
	}
	if got.Metric == nil {
		t.Fatal("Metric is nil")
	}
	if got.Metric.Value != Real(1.5) {
		t.Errorf("Metric.Value = %v, want 1.5", got.Metric.Value)
	}
	if w, _ := got.Metric.Warn.Get(); w != Real(1) {
		t.Errorf("Metric.Warn = %v, want 1", w)
	}
	if c, _ := got.Metric.Crit.Get(); c != Real(2) {
		t.Errorf("Metric.Crit = %v, want 2", c)
	}
}

func TestMap_PreservesMissingMetric(t *testing.T) {
	got := Map(Default[Duration](), Duration.Seconds)
	if got.Metric != nil {
		t.Error("Map should not invent a metric")
	}
}

func TestCheckResult_Entry(t *testing.T) {
	args, _ := NewLevelsCheckerArgs("overall_response_time", "s")
	res := UpperLevels(Duration(time.Second), Duration(2*time.Second)).
		Check(Duration(1500*time.Millisecond), NewNotice("rt"), args)

	e := res.Entry()
	if e.State != StateWarn {
		t.Errorf("State = %v, want WARNING", e.State)
	}
	if e.Perf == nil {
		t.Fatal("Perf is nil")
	}
	if got, want := e.Perf.String(), "overall_response_time=1.5s;1;2"; got != want {
		t.Errorf("Perf.String() = %q, want %q", got, want)
	}
	if got, want := e.Text(), "overall_response_time: 1.5s (warn/crit at 1s/2s) (!)"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestEntryConstructors(t *testing.T) {
	tests := []struct {
		entry Entry
		want  State
		text  string
	}{
		{OK(NewNotice("fine")), StateOK, "fine"},
		{Warn(NewNotice("meh")), StateWarn, "meh (!)"},
		{Crit(NewSummary("bad")), StateCrit, "bad (!!)"},
		{Unknown(NewSummary("lost")), StateUnknown, "lost (?)"},
	}

	for _, tt := range tests {
		if tt.entry.State != tt.want {
			t.Errorf("State = %v, want %v", tt.entry.State, tt.want)
		}
		if got := tt.entry.Text(); got != tt.text {
			t.Errorf("Text() = %q, want %q", got, tt.text)
		}
		if tt.entry.Perf != nil {
			t.Error("plain entries carry no perf data")
		}
	}
}

func TestPerf_String(t *testing.T) {
	tests := []struct {
		name string
		perf Perf
		want string
	}{
		{
			name: "both bounds",
			perf: Perf{Label: "rt", Value: 0.25, Unit: UnitSeconds, Warn: Some(Real(1)), Crit: Some(Real(2))},
			want: "rt=0.25s;1;2",
		},
		{
			name: "no bounds",
			perf: Perf{Label: "users", Value: 3},
			want: "users=3;;",
		},
		{
			name: "crit only",
			perf: Perf{Label: "disk", Value: 84.2, Unit: UnitPercent, Crit: Some(Real(90))},
			want: "disk=84.2%;;90",
		},
		{
			name: "label with space",
			perf: Perf{Label: "free space", Value: 10, Unit: UnitBytes},
			want: "'free space'=10B;;",
		},
		{
			name: "label with quote",
			perf: Perf{Label: "it's", Value: 1},
			want: "'it''s'=1;;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.perf.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
