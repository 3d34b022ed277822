package certificate

import (
	"crypto/x509"
	"fmt"
	"strings"
	"time"

	"github.com/jonwraymond/toolcheck/check"
)

// ValidityLabel is the performance data label of the remaining validity.
const ValidityLabel = "certificate_remaining_validity"

var validityArgs = check.LevelsCheckerArgs{Label: ValidityLabel, Unit: check.UnitSeconds}

// Info holds the certificate facts that are checked.
type Info struct {
	Subject            string
	Issuer             string
	Serial             string
	SignatureAlgorithm string
	NotAfter           time.Time
}

// InfoFromX509 extracts Info from a parsed certificate. The serial number is
// rendered as colon-separated upper-case hex bytes.
func InfoFromX509(cert *x509.Certificate) Info {
	info := Info{
		Subject:            cert.Subject.CommonName,
		Issuer:             cert.Issuer.CommonName,
		SignatureAlgorithm: cert.SignatureAlgorithm.String(),
		NotAfter:           cert.NotAfter,
	}
	if cert.SerialNumber != nil {
		info.Serial = formatSerial(cert.SerialNumber.Bytes())
	}
	return info
}

func formatSerial(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02X", c)
	}
	return strings.Join(parts, ":")
}

// Config selects the dimensions to check. Nil fields are not configured and
// contribute an OK placeholder.
type Config struct {
	// Validity levels, normally in the check.Lower direction.
	Validity *check.LevelsChecker[Validity]

	Subject            *string
	Issuer             *string
	Serial             *string
	SignatureAlgorithm *string
}

// Check evaluates info at time now. The collection always holds five entries:
// validity, subject, issuer, serial and signature algorithm, in that order.
func Check(info Info, now time.Time, cfg Config) check.Collection {
	return check.NewCollection(
		checkValidity(info.NotAfter, now, cfg.Validity),
		checkField("Subject", info.Subject, cfg.Subject),
		checkField("Issuer", info.Issuer, cfg.Issuer),
		checkField("Serial", info.Serial, cfg.Serial),
		checkField("Signature algorithm", info.SignatureAlgorithm, cfg.SignatureAlgorithm),
	)
}

func checkValidity(notAfter, now time.Time, levels *check.LevelsChecker[Validity]) check.CheckResult[Validity] {
	remaining := Validity(notAfter.Sub(now))
	if levels == nil {
		if remaining <= 0 {
			return check.CheckResult[Validity]{State: check.StateCrit, Output: expired(notAfter)}
		}
		return check.Default[Validity]()
	}

	result := levels.Check(
		remaining,
		check.NewSummary(fmt.Sprintf("Server certificate validity: %s", remaining)),
		validityArgs,
	)

	if remaining <= 0 {
		result.State = check.StateCrit
		result.Output = expired(notAfter)
	}
	return result
}

func expired(notAfter time.Time) check.Output {
	return check.NewSummary(fmt.Sprintf("Certificate expired (%s)", notAfter.UTC().Format(time.RFC3339)))
}

func checkField(what, got string, want *string) check.Entry {
	if want == nil {
		return check.OK(check.NewNotice(""))
	}
	if got != *want {
		return check.Warn(check.NewNotice(fmt.Sprintf("%s is %q but expected %q", what, got, *want)))
	}
	return check.OK(check.NewNotice(fmt.Sprintf("%s: %s", what, got)))
}
