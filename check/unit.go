package check

import "fmt"

// Unit is a performance data unit of measurement.
type Unit string

// Recognized units. UnitNone is a plain count.
const (
	UnitNone         Unit = ""
	UnitSeconds      Unit = "s"
	UnitMilliseconds Unit = "ms"
	UnitMicroseconds Unit = "us"
	UnitPercent      Unit = "%"
	UnitBytes        Unit = "B"
	UnitKilobytes    Unit = "KB"
	UnitMegabytes    Unit = "MB"
	UnitGigabytes    Unit = "GB"
	UnitTerabytes    Unit = "TB"
	UnitCounter      Unit = "c"
)

var validUnits = map[string]Unit{
	"":   UnitNone,
	"1":  UnitNone,
	"s":  UnitSeconds,
	"ms": UnitMilliseconds,
	"us": UnitMicroseconds,
	"%":  UnitPercent,
	"B":  UnitBytes,
	"KB": UnitKilobytes,
	"MB": UnitMegabytes,
	"GB": UnitGigabytes,
	"TB": UnitTerabytes,
	"c":  UnitCounter,
}

// ParseUnit parses a unit string. "1" is accepted as an alias for a plain count.
func ParseUnit(s string) (Unit, error) {
	u, ok := validUnits[s]
	if !ok {
		return UnitNone, fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}
	return u, nil
}

// MustParseUnit is like ParseUnit but panics on error.
func MustParseUnit(s string) Unit {
	u, err := ParseUnit(s)
	if err != nil {
		panic(err)
	}
	return u
}
