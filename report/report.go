package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jonwraymond/toolcheck/check"
)

// Format represents the output format type.
type Format string

const (
	FormatNagios Format = "nagios"
	FormatJSON   Format = "json"
	FormatTable  Format = "table"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("report: unknown format")

// ParseFormat parses an output format name. The empty string selects FormatNagios.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatNagios:
		return FormatNagios, nil
	case FormatJSON, FormatTable:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Formatter writes collections in one format.
type Formatter struct {
	format Format
	writer io.Writer
	title  string
}

// NewFormatter creates a new formatter.
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{format: format, writer: writer}
}

// SetTitle sets the heading printed above tables.
func (f *Formatter) SetTitle(title string) {
	f.title = title
}

// Render writes coll in the configured format.
func (f *Formatter) Render(coll check.Collection) error {
	switch f.format {
	case FormatJSON:
		return JSON(f.writer, coll)
	case FormatTable:
		return Table(f.writer, f.title, coll)
	default:
		_, err := fmt.Fprintln(f.writer, coll.String())
		return err
	}
}

// Document is the JSON form of a collection.
type Document struct {
	State    string       `json:"state"`
	ExitCode int          `json:"exit_code"`
	Summary  string       `json:"summary"`
	Details  []string     `json:"details"`
	Perf     []PerfRecord `json:"perf"`
	Results  []Record     `json:"results"`
}

// Record is the JSON form of one entry.
type Record struct {
	State string `json:"state"`
	Kind  string `json:"kind"`
	Text  string `json:"text,omitempty"`
}

// PerfRecord is the JSON form of one performance data entry.
type PerfRecord struct {
	Label string   `json:"label"`
	Value float64  `json:"value"`
	Unit  string   `json:"unit,omitempty"`
	Warn  *float64 `json:"warn,omitempty"`
	Crit  *float64 `json:"crit,omitempty"`
}

func bound(b check.Bound[check.Real]) *float64 {
	v, ok := b.Get()
	if !ok {
		return nil
	}
	f := v.Float64()
	return &f
}

// NewDocument converts coll to its JSON form.
func NewDocument(coll check.Collection) Document {
	state := coll.State()
	doc := Document{
		State:    state.String(),
		ExitCode: state.ExitCode(),
		Summary:  coll.Summary(),
		Details:  coll.Details(),
		Perf:     []PerfRecord{},
		Results:  []Record{},
	}
	if doc.Details == nil {
		doc.Details = []string{}
	}
	for _, p := range coll.Metrics() {
		doc.Perf = append(doc.Perf, PerfRecord{
			Label: p.Label,
			Value: p.Value,
			Unit:  string(p.Unit),
			Warn:  bound(p.Warn),
			Crit:  bound(p.Crit),
		})
	}
	for _, e := range coll.Entries() {
		doc.Results = append(doc.Results, Record{
			State: e.State.String(),
			Kind:  e.Output.Kind.String(),
			Text:  e.Output.Text,
		})
	}
	return doc
}

// JSON writes coll as an indented JSON document.
func JSON(w io.Writer, coll check.Collection) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(coll))
}
