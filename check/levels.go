package check

import "fmt"

// Bound is an optional threshold.
type Bound[T any] struct {
	value T
	set   bool
}

// Some returns a bound set to v.
func Some[T any](v T) Bound[T] {
	return Bound[T]{value: v, set: true}
}

// None returns an unset bound.
func None[T any]() Bound[T] {
	return Bound[T]{}
}

// Get returns the bound value and whether it is set.
func (b Bound[T]) Get() (T, bool) {
	return b.value, b.set
}

// IsSet reports whether the bound carries a value.
func (b Bound[T]) IsSet() bool {
	return b.set
}

func mapBound[T, U any](b Bound[T], f func(T) U) Bound[U] {
	if !b.set {
		return None[U]()
	}
	return Some(f(b.value))
}

// Direction selects how a value is compared with its bounds.
type Direction int

const (
	// Upper breaches when the value is greater than or equal to the bound.
	Upper Direction = iota + 1
	// Lower breaches when the value is strictly less than the bound.
	Lower
)

func (d Direction) String() string {
	switch d {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return "invalid"
	}
}

// ParseDirection parses "upper" or "lower".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "upper":
		return Upper, nil
	case "lower":
		return Lower, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// LevelsChecker classifies a value against an optional warning and an optional
// critical bound. The zero value has no bounds and no direction; build one with
// NewLevelsChecker, UpperLevels or LowerLevels.
type LevelsChecker[T Measurable[T]] struct {
	direction Direction
	warn      Bound[T]
	crit      Bound[T]
}

// NewLevelsChecker validates and returns a levels checker.
func NewLevelsChecker[T Measurable[T]](direction Direction, warn, crit Bound[T]) (LevelsChecker[T], error) {
	if direction != Upper && direction != Lower {
		return LevelsChecker[T]{}, fmt.Errorf("%w: %d", ErrInvalidDirection, direction)
	}

	l := LevelsChecker[T]{direction: direction, warn: warn, crit: crit}

	w, wok := warn.Get()
	c, cok := crit.Get()
	if wok && cok && w.Compare(c) != 0 && l.breaches(w, c) {
		return LevelsChecker[T]{}, fmt.Errorf("%w: warn %s, crit %s (%s)", ErrInvalidLevels, w, c, direction)
	}

	return l, nil
}

// UpperLevels returns an upper-direction checker with both bounds set.
// It panics if warn is greater than crit.
func UpperLevels[T Measurable[T]](warn, crit T) LevelsChecker[T] {
	return mustLevels(NewLevelsChecker(Upper, Some(warn), Some(crit)))
}

// LowerLevels returns a lower-direction checker with both bounds set.
// It panics if warn is less than crit.
func LowerLevels[T Measurable[T]](warn, crit T) LevelsChecker[T] {
	return mustLevels(NewLevelsChecker(Lower, Some(warn), Some(crit)))
}

func mustLevels[T Measurable[T]](l LevelsChecker[T], err error) LevelsChecker[T] {
	if err != nil {
		panic(err)
	}
	return l
}

// Direction returns the comparison direction.
func (l LevelsChecker[T]) Direction() Direction { return l.direction }

// Warn returns the warning bound.
func (l LevelsChecker[T]) Warn() Bound[T] { return l.warn }

// Crit returns the critical bound.
func (l LevelsChecker[T]) Crit() Bound[T] { return l.crit }

// breaches reports whether value crosses bound in the checker's direction.
func (l LevelsChecker[T]) breaches(value, bound T) bool {
	if l.direction == Lower {
		return value.Compare(bound) < 0
	}
	return value.Compare(bound) >= 0
}

// Evaluate returns the state of value without rendering any output.
// Critical is checked first: a value breaching both bounds is StateCrit.
func (l LevelsChecker[T]) Evaluate(value T) State {
	if c, ok := l.crit.Get(); ok && l.breaches(value, c) {
		return StateCrit
	}
	if w, ok := l.warn.Get(); ok && l.breaches(value, w) {
		return StateWarn
	}
	return StateOK
}

// LevelsCheckerArgs names the metric produced by a check.
type LevelsCheckerArgs struct {
	Label string
	Unit  Unit

	// AlwaysEmit attaches a metric even when no bound is configured.
	AlwaysEmit bool
}

// NewLevelsCheckerArgs validates label and unit.
func NewLevelsCheckerArgs(label, unit string) (LevelsCheckerArgs, error) {
	if label == "" {
		return LevelsCheckerArgs{}, ErrEmptyLabel
	}
	u, err := ParseUnit(unit)
	if err != nil {
		return LevelsCheckerArgs{}, err
	}
	return LevelsCheckerArgs{Label: label, Unit: u}, nil
}

// Check evaluates value. When the value is within levels the result carries
// output unchanged; otherwise the text is replaced by a description of the
// breached levels, keeping the output kind.
func (l LevelsChecker[T]) Check(value T, output Output, args LevelsCheckerArgs) CheckResult[T] {
	state := l.Evaluate(value)

	result := CheckResult[T]{State: state, Output: output}
	if state != StateOK {
		result.Output = Output{Kind: output.Kind, Text: l.describe(value, state, args.Label)}
	}

	if l.warn.IsSet() || l.crit.IsSet() || args.AlwaysEmit {
		result.Metric = &Metric[T]{
			Label: args.Label,
			Value: value,
			Unit:  args.Unit,
			Warn:  l.warn,
			Crit:  l.crit,
		}
	}

	return result
}

func (l LevelsChecker[T]) describe(value T, state State, label string) string {
	w, wok := l.warn.Get()
	c, cok := l.crit.Get()

	at := "at"
	if l.direction == Lower {
		at = "below"
	}

	var levels string
	switch {
	case wok && cok:
		levels = fmt.Sprintf("warn/crit %s %s/%s", at, w, c)
	case state == StateCrit:
		levels = fmt.Sprintf("crit %s %s", at, c)
	default:
		levels = fmt.Sprintf("warn %s %s", at, w)
	}

	return fmt.Sprintf("%s: %s (%s)", label, value, levels)
}
