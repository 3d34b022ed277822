package check

import "strings"

// Collection folds check results into one outcome. The zero value is an empty
// collection: OK, no text, no metrics.
type Collection struct {
	entries []Entry
}

// NewCollection folds results in order.
func NewCollection(results ...Reportable) Collection {
	entries := make([]Entry, 0, len(results))
	for _, r := range results {
		entries = append(entries, r.Entry())
	}
	return Collection{entries: entries}
}

// Join returns a collection holding the entries of c followed by those of other.
func (c Collection) Join(other Collection) Collection {
	entries := make([]Entry, 0, len(c.entries)+len(other.entries))
	entries = append(entries, c.entries...)
	entries = append(entries, other.entries...)
	return Collection{entries: entries}
}

// Len returns the number of entries.
func (c Collection) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in evaluation order.
func (c Collection) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// State returns the worst state of all entries.
func (c Collection) State() State {
	worst := StateOK
	for _, e := range c.entries {
		if e.State.Worse(worst) {
			worst = e.State
		}
	}
	return worst
}

// Summary returns the headline: every Summary text plus the text of every
// non-OK entry, in order.
func (c Collection) Summary() string {
	var parts []string
	for _, e := range c.entries {
		if e.Output.Text == "" {
			continue
		}
		if e.Output.Kind == Summary || e.State != StateOK {
			parts = append(parts, e.Text())
		}
	}
	return strings.Join(parts, ", ")
}

// Details returns the text of every entry that has one, in order.
func (c Collection) Details() []string {
	var lines []string
	for _, e := range c.entries {
		if e.Output.Text != "" {
			lines = append(lines, e.Text())
		}
	}
	return lines
}

// Text returns the headline followed by the detail lines.
func (c Collection) Text() string {
	details := c.Details()
	if s := c.Summary(); s != "" {
		details = append([]string{s}, details...)
	}
	return strings.Join(details, "\n")
}

// Metrics returns the performance data of all entries that carry it, in order.
func (c Collection) Metrics() []Perf {
	metrics := make([]Perf, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Perf != nil {
			metrics = append(metrics, *e.Perf)
		}
	}
	return metrics
}

// String renders the collection as plugin output:
//
//	STATE - summary | perf perf
//	detail
//	detail
func (c Collection) String() string {
	var b strings.Builder
	b.WriteString(c.State().String())
	if s := c.Summary(); s != "" {
		b.WriteString(" - ")
		b.WriteString(s)
	}

	if metrics := c.Metrics(); len(metrics) > 0 {
		b.WriteString(" |")
		for _, m := range metrics {
			b.WriteByte(' ')
			b.WriteString(m.String())
		}
	}

	for _, line := range c.Details() {
		b.WriteByte('\n')
		b.WriteString(line)
	}
	return b.String()
}
