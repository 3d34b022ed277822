package certificate

import (
	"cmp"
	"strconv"
	"time"
)

// Validity is the time left before a certificate expires. It is emitted in
// seconds and rendered in whole days.
type Validity time.Duration

// Days returns a Validity of n days.
func Days(n int) Validity {
	return Validity(time.Duration(n) * 24 * time.Hour)
}

// Compare implements check.Measurable.
func (v Validity) Compare(other Validity) int { return cmp.Compare(v, other) }

// Float64 returns the validity in seconds.
func (v Validity) Float64() float64 { return time.Duration(v).Seconds() }

func (v Validity) String() string {
	return strconv.FormatInt(v.days(), 10) + " days"
}

func (v Validity) days() int64 {
	return int64(time.Duration(v) / (24 * time.Hour))
}
