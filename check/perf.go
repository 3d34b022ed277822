package check

import "strings"

// Perf is one performance data entry.
type Perf struct {
	Label string
	Value float64
	Unit  Unit
	Warn  Bound[Real]
	Crit  Bound[Real]
}

// String renders the entry as label=value<unit>;warn;crit.
func (p Perf) String() string {
	var b strings.Builder
	b.WriteString(quoteLabel(p.Label))
	b.WriteByte('=')
	b.WriteString(formatFloat(p.Value))
	b.WriteString(string(p.Unit))
	b.WriteByte(';')
	b.WriteString(boundString(p.Warn))
	b.WriteByte(';')
	b.WriteString(boundString(p.Crit))
	return b.String()
}

// WarnString returns the warning bound, or "" when unset.
func (p Perf) WarnString() string { return boundString(p.Warn) }

// CritString returns the critical bound, or "" when unset.
func (p Perf) CritString() string { return boundString(p.Crit) }

func boundString(b Bound[Real]) string {
	v, ok := b.Get()
	if !ok {
		return ""
	}
	return v.String()
}

func quoteLabel(label string) string {
	if !strings.ContainsAny(label, " ='") {
		return label
	}
	return "'" + strings.ReplaceAll(label, "'", "''") + "'"
}
