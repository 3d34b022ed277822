package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jonwraymond/toolcheck/certificate"
	"github.com/jonwraymond/toolcheck/check"
	"github.com/jonwraymond/toolcheck/responsetime"
)

// Dimension names reported in DimensionErrors for the fixed sections.
const (
	ResponseTimeDimension = "response_time"
	ValidityDimension     = "certificate.validity"
)

// Checks holds validated checkers built from a Config.
type Checks struct {
	ResponseTime responsetime.Config
	Certificate  certificate.Config
	Dimensions   []DimensionCheck

	invalid map[string]bool
}

// DimensionCheck is a built free-form dimension.
type DimensionCheck struct {
	Name   string
	Levels check.LevelsChecker[check.Real]
	Args   check.LevelsCheckerArgs
}

// Check evaluates value and reports it as a summary line.
func (d DimensionCheck) Check(value float64) check.CheckResult[check.Real] {
	v := check.Real(value)
	return d.Levels.Check(v, check.NewSummary(d.Args.Label+": "+v.String()+string(d.Args.Unit)), d.Args)
}

// Lookup returns the dimension with the given name.
func (c *Checks) Lookup(name string) (DimensionCheck, bool) {
	for _, d := range c.Dimensions {
		if d.Name == name {
			return d, true
		}
	}
	return DimensionCheck{}, false
}

// Invalid reports whether the dimension name is configured but failed to build.
func (c *Checks) Invalid(name string) bool {
	return c.invalid[name]
}

// Build constructs every configured checker. Each dimension is built on its
// own: failures are returned as joined check.DimensionErrors alongside the
// dimensions that did build, which stay usable.
func (c *Config) Build() (*Checks, error) {
	checks := &Checks{invalid: make(map[string]bool)}
	var errs []error

	if c.ResponseTime != nil {
		levels, err := buildLevels(c.ResponseTime, check.Upper, seconds)
		if err != nil {
			errs = append(errs, check.NewDimensionError(ResponseTimeDimension, err))
		} else {
			checks.ResponseTime.ResponseTime = &levels
		}
	}

	if cert := c.Certificate; cert != nil {
		checks.Certificate = certificate.Config{
			Subject:            cert.Subject,
			Issuer:             cert.Issuer,
			Serial:             cert.Serial,
			SignatureAlgorithm: cert.SignatureAlgorithm,
		}
		if cert.Validity != nil {
			levels, err := buildLevels(cert.Validity, check.Lower, days)
			if err != nil {
				errs = append(errs, check.NewDimensionError(ValidityDimension, err))
			} else {
				checks.Certificate.Validity = &levels
			}
		}
	}

	for _, d := range c.Dimensions {
		dc, err := buildDimension(d)
		if err != nil {
			errs = append(errs, check.NewDimensionError(d.Name, err))
			checks.invalid[d.Name] = true
			continue
		}
		checks.Dimensions = append(checks.Dimensions, dc)
	}

	return checks, errors.Join(errs...)
}

func buildDimension(d Dimension) (DimensionCheck, error) {
	label := d.Label
	if label == "" {
		label = d.Name
	}
	args, err := check.NewLevelsCheckerArgs(label, d.Unit)
	if err != nil {
		return DimensionCheck{}, err
	}
	args.AlwaysEmit = d.AlwaysEmit

	if d.Direction == "" && (d.Warn != nil || d.Crit != nil) {
		return DimensionCheck{}, ErrMissingDirection
	}
	levels, err := buildLevels(&Levels{Direction: d.Direction, Warn: d.Warn, Crit: d.Crit}, check.Upper, toReal)
	if err != nil {
		return DimensionCheck{}, err
	}
	return DimensionCheck{Name: d.Name, Levels: levels, Args: args}, nil
}

// buildLevels uses fallback when l has no direction; the fixed sections each
// have one natural direction.
func buildLevels[T check.Measurable[T]](l *Levels, fallback check.Direction, conv func(float64) (T, error)) (check.LevelsChecker[T], error) {
	direction := fallback
	if l.Direction != "" {
		d, err := check.ParseDirection(l.Direction)
		if err != nil {
			return check.LevelsChecker[T]{}, err
		}
		direction = d
	}

	warn, err := bound(l.Warn, conv)
	if err != nil {
		return check.LevelsChecker[T]{}, fmt.Errorf("warn: %w", err)
	}
	crit, err := bound(l.Crit, conv)
	if err != nil {
		return check.LevelsChecker[T]{}, fmt.Errorf("crit: %w", err)
	}
	return check.NewLevelsChecker(direction, warn, crit)
}

func bound[T any](v *float64, conv func(float64) (T, error)) (check.Bound[T], error) {
	if v == nil {
		return check.None[T](), nil
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return check.None[T](), fmt.Errorf("%w: %v is not a finite number", ErrInvalidBound, *v)
	}
	t, err := conv(*v)
	if err != nil {
		return check.None[T](), err
	}
	return check.Some(t), nil
}

func toReal(v float64) (check.Real, error) { return check.Real(v), nil }

// duration converts v units of unit, rejecting results outside time.Duration.
func duration(v float64, unit time.Duration, name string) (time.Duration, error) {
	ns := v * float64(unit)
	// float64(math.MaxInt64) rounds up to 2^63, itself out of range.
	if ns >= float64(math.MaxInt64) || ns < float64(math.MinInt64) {
		return 0, fmt.Errorf("%w: %v %s is out of range", ErrInvalidBound, v, name)
	}
	return time.Duration(ns), nil
}

func seconds(v float64) (check.Duration, error) {
	d, err := duration(v, time.Second, "seconds")
	return check.Duration(d), err
}

func days(v float64) (certificate.Validity, error) {
	d, err := duration(v, 24*time.Hour, "days")
	return certificate.Validity(d), err
}
