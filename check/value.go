package check

import (
	"cmp"
	"strconv"
	"time"
)

// Measurable is the capability a measured value needs to be checked against
// levels: a total order and a numeric form for performance data.
type Measurable[T any] interface {
	// Compare returns -1, 0 or +1 when the receiver is less than, equal to
	// or greater than other.
	Compare(other T) int

	// Float64 returns the value as emitted in performance data.
	Float64() float64

	// String renders the value for notice text.
	String() string
}

// Real is a dimensionless floating-point value.
type Real float64

// Compare implements Measurable.
func (r Real) Compare(other Real) int { return cmp.Compare(r, other) }

// Float64 implements Measurable.
func (r Real) Float64() float64 { return float64(r) }

func (r Real) String() string { return formatFloat(float64(r)) }

// Duration is a time span. Its numeric form is in seconds.
type Duration time.Duration

// Compare implements Measurable.
func (d Duration) Compare(other Duration) int { return cmp.Compare(d, other) }

// Float64 returns the duration in seconds.
func (d Duration) Float64() float64 { return time.Duration(d).Seconds() }

func (d Duration) String() string { return formatFloat(d.Float64()) + "s" }

// Seconds converts d into a Real number of seconds.
func (d Duration) Seconds() Real { return Real(d.Float64()) }

// Percent is a ratio expressed in percent.
type Percent float64

// Compare implements Measurable.
func (p Percent) Compare(other Percent) int { return cmp.Compare(p, other) }

// Float64 implements Measurable.
func (p Percent) Float64() float64 { return float64(p) }

func (p Percent) String() string { return formatFloat(float64(p)) + "%" }

// Count is a non-fractional quantity.
type Count int64

// Compare implements Measurable.
func (c Count) Compare(other Count) int { return cmp.Compare(c, other) }

// Float64 implements Measurable.
func (c Count) Float64() float64 { return float64(c) }

func (c Count) String() string { return strconv.FormatInt(int64(c), 10) }

// Bytes is a size in bytes.
type Bytes uint64

// Compare implements Measurable.
func (b Bytes) Compare(other Bytes) int { return cmp.Compare(b, other) }

// Float64 implements Measurable.
func (b Bytes) Float64() float64 { return float64(b) }

func (b Bytes) String() string { return strconv.FormatUint(uint64(b), 10) + " B" }

// formatFloat renders f with the fewest digits that round-trip.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var (
	_ Measurable[Real]     = Real(0)
	_ Measurable[Duration] = Duration(0)
	_ Measurable[Percent]  = Percent(0)
	_ Measurable[Count]    = Count(0)
	_ Measurable[Bytes]    = Bytes(0)
)
