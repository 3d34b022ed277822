package check

import "strings"

// State is the severity assigned to a check outcome.
type State int

const (
	// StateOK indicates the value is within all configured levels.
	StateOK State = iota
	// StateWarn indicates the warning level was breached.
	StateWarn
	// StateCrit indicates the critical level was breached.
	StateCrit
	// StateUnknown indicates the value could not be evaluated.
	StateUnknown
)

// String returns the monitoring label of the state.
func (s State) String() string {
	switch s {
	case StateOK:
		return "OK"
	case StateWarn:
		return "WARNING"
	case StateCrit:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the plugin exit code for the state.
func (s State) ExitCode() int {
	switch s {
	case StateOK:
		return 0
	case StateWarn:
		return 1
	case StateCrit:
		return 2
	default:
		return 3
	}
}

// Marker returns the suffix appended to text of a non-OK result.
func (s State) Marker() string {
	switch s {
	case StateOK:
		return ""
	case StateWarn:
		return "(!)"
	case StateCrit:
		return "(!!)"
	default:
		return "(?)"
	}
}

// rank orders states for worst-case folding: OK < WARN < UNKNOWN < CRIT.
func (s State) rank() int {
	switch s {
	case StateOK:
		return 0
	case StateWarn:
		return 1
	case StateCrit:
		return 3
	default:
		return 2
	}
}

// Worse reports whether s is more severe than other.
func (s State) Worse(other State) bool {
	return s.rank() > other.rank()
}

// Worst returns the most severe of the given states, or StateOK if none are given.
func Worst(states ...State) State {
	worst := StateOK
	for _, s := range states {
		if s.Worse(worst) {
			worst = s
		}
	}
	return worst
}

// ParseState parses a state name. It accepts the short and long forms
// (ok, warn, warning, crit, critical, unknown) in any case.
func ParseState(s string) (State, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ok":
		return StateOK, true
	case "warn", "warning":
		return StateWarn, true
	case "crit", "critical":
		return StateCrit, true
	case "unknown":
		return StateUnknown, true
	default:
		return StateUnknown, false
	}
}
