package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/atc0005/go-nagios"

	"github.com/jonwraymond/toolcheck/check"
)

func sampleCollection() check.Collection {
	levels := check.UpperLevels(check.Duration(time.Second), check.Duration(2*time.Second))
	args := check.LevelsCheckerArgs{Label: "overall_response_time", Unit: check.UnitSeconds}
	rt := levels.Check(check.Duration(1500*time.Millisecond), check.NewNotice("Response time: 1500 ms"), args)

	return check.NewCollection(
		check.Map(rt, check.Duration.Seconds),
		check.OK(check.NewSummary("Server certificate validity: 30 days")),
	)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatNagios, false},
		{"nagios", FormatNagios, false},
		{"json", FormatJSON, false},
		{"table", FormatTable, false},
		{"xml", "", true},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if tc.wantErr && !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyToPlugin(t *testing.T) {
	tests := []struct {
		name        string
		coll        check.Collection
		wantExit    int
		wantOutput  string
		wantDetails string
	}{
		{
			name:        "warning with perfdata",
			coll:        sampleCollection(),
			wantExit:    nagios.StateWARNINGExitCode,
			wantOutput:  "WARNING - overall_response_time: 1.5s (warn/crit at 1s/2s) (!), Server certificate validity: 30 days",
			wantDetails: "overall_response_time: 1.5s (warn/crit at 1s/2s) (!)\nServer certificate validity: 30 days",
		},
		{
			name:       "empty collection",
			coll:       check.Collection{},
			wantExit:   nagios.StateOKExitCode,
			wantOutput: "OK",
		},
		{
			name:       "critical",
			coll:       check.NewCollection(check.Crit(check.NewSummary("Certificate expired"))),
			wantExit:   nagios.StateCRITICALExitCode,
			wantOutput: "CRITICAL - Certificate expired (!!)",
		},
		{
			name:       "unknown",
			coll:       check.NewCollection(check.Unknown(check.NewSummary("dial failed"))),
			wantExit:   nagios.StateUNKNOWNExitCode,
			wantOutput: "UNKNOWN - dial failed (?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Plugin(tt.coll)
			if err != nil {
				t.Fatalf("Plugin() error = %v", err)
			}
			if p.ExitStatusCode != tt.wantExit {
				t.Errorf("ExitStatusCode = %d, want %d", p.ExitStatusCode, tt.wantExit)
			}
			if p.ServiceOutput != tt.wantOutput {
				t.Errorf("ServiceOutput = %q, want %q", p.ServiceOutput, tt.wantOutput)
			}
			if tt.wantDetails != "" && p.LongServiceOutput != tt.wantDetails {
				t.Errorf("LongServiceOutput = %q, want %q", p.LongServiceOutput, tt.wantDetails)
			}
		})
	}
}

func TestPerformanceData(t *testing.T) {
	m := sampleCollection().Metrics()[0]
	pd := PerformanceData(m)

	if pd.Label != "overall_response_time" {
		t.Errorf("Label = %q", pd.Label)
	}
	if pd.Value != "1.5" || pd.UnitOfMeasurement != "s" {
		t.Errorf("Value/UoM = %q/%q, want 1.5/s", pd.Value, pd.UnitOfMeasurement)
	}
	if pd.Warn != "1" || pd.Crit != "2" {
		t.Errorf("Warn/Crit = %q/%q, want 1/2", pd.Warn, pd.Crit)
	}
	if pd.Min != "" || pd.Max != "" {
		t.Errorf("Min/Max should be empty, got %q/%q", pd.Min, pd.Max)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleCollection()); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if doc.State != "WARNING" || doc.ExitCode != 1 {
		t.Errorf("State = %s/%d, want WARNING/1", doc.State, doc.ExitCode)
	}
	if len(doc.Perf) != 1 {
		t.Fatalf("expected 1 perf record, got %d", len(doc.Perf))
	}
	p := doc.Perf[0]
	if p.Value != 1.5 || p.Unit != "s" || p.Warn == nil || *p.Warn != 1 || p.Crit == nil || *p.Crit != 2 {
		t.Errorf("unexpected perf record %+v", p)
	}
	if len(doc.Results) != 2 || doc.Results[0].Kind != "notice" || doc.Results[1].Kind != "summary" {
		t.Errorf("unexpected results %+v", doc.Results)
	}
}

func TestJSON_EmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, check.Collection{}); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"details": []`, `"perf": []`, `"results": []`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in %s", want, out)
		}
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, "toolcheck", sampleCollection()); err != nil {
		t.Fatalf("Table() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"toolcheck", "STATE", "PERF", "overall_response_time=1.5s;1;2", "Server certificate validity: 30 days"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatter_Render(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatNagios, &buf)
	if err := f.Render(check.NewCollection(check.OK(check.NewSummary("fine")))); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := buf.String(); got != "OK - fine\nfine\n" {
		t.Errorf("Render() = %q", got)
	}

	buf.Reset()
	f = NewFormatter(FormatJSON, &buf)
	if err := f.Render(check.Collection{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("Render(json) produced invalid JSON: %s", buf.String())
	}
}
