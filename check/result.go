package check

// Metric is the performance data attached to a levels check.
type Metric[T any] struct {
	Label string
	Value T
	Unit  Unit
	Warn  Bound[T]
	Crit  Bound[T]
}

// CheckResult is the typed outcome of evaluating one value.
type CheckResult[T Measurable[T]] struct {
	State  State
	Output Output

	// Metric is nil when the check was not asked to emit performance data.
	Metric *Metric[T]
}

// Default returns the placeholder for a dimension that is not configured:
// OK, no text and no metric.
func Default[T Measurable[T]]() CheckResult[T] {
	return CheckResult[T]{State: StateOK, Output: NewNotice("")}
}

// Map converts the value type of a result, including the metric bounds.
func Map[T Measurable[T], U Measurable[U]](r CheckResult[T], f func(T) U) CheckResult[U] {
	out := CheckResult[U]{State: r.State, Output: r.Output}
	if r.Metric != nil {
		out.Metric = &Metric[U]{
			Label: r.Metric.Label,
			Value: f(r.Metric.Value),
			Unit:  r.Metric.Unit,
			Warn:  mapBound(r.Metric.Warn, f),
			Crit:  mapBound(r.Metric.Crit, f),
		}
	}
	return out
}

// Entry implements Reportable.
func (r CheckResult[T]) Entry() Entry {
	e := Entry{State: r.State, Output: r.Output}
	if r.Metric != nil {
		toReal := func(v T) Real { return Real(v.Float64()) }
		e.Perf = &Perf{
			Label: r.Metric.Label,
			Value: r.Metric.Value.Float64(),
			Unit:  r.Metric.Unit,
			Warn:  mapBound(r.Metric.Warn, toReal),
			Crit:  mapBound(r.Metric.Crit, toReal),
		}
	}
	return e
}

// Reportable is anything that can be folded into a Collection.
type Reportable interface {
	Entry() Entry
}

// Entry is a check result with its value type erased.
type Entry struct {
	State  State
	Output Output
	Perf   *Perf
}

// Entry implements Reportable.
func (e Entry) Entry() Entry { return e }

// Text returns the output text followed by the state marker, if any.
func (e Entry) Text() string {
	if e.Output.Text == "" || e.State == StateOK {
		return e.Output.Text
	}
	return e.Output.Text + " " + e.State.Marker()
}

// OK returns an OK entry without performance data.
func OK(out Output) Entry { return Entry{State: StateOK, Output: out} }

// Warn returns a WARNING entry without performance data.
func Warn(out Output) Entry { return Entry{State: StateWarn, Output: out} }

// Crit returns a CRITICAL entry without performance data.
func Crit(out Output) Entry { return Entry{State: StateCrit, Output: out} }

// Unknown returns an UNKNOWN entry without performance data.
func Unknown(out Output) Entry { return Entry{State: StateUnknown, Output: out} }
