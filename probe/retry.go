package probe

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"math/rand/v2"
	"time"
)

// Retry configures repeated dial attempts for transient connection failures.
type Retry struct {
	// Attempts is the total number of dials, including the first.
	// Values below 1 mean a single attempt.
	Attempts int

	// Delay is the wait before the second attempt. It doubles on every
	// subsequent attempt.
	// Default: 200ms
	Delay time.Duration

	// MaxDelay caps the wait between attempts.
	// Default: 2s
	MaxDelay time.Duration

	// OnRetry is called before each wait.
	OnRetry func(attempt int, err error, delay time.Duration)
}

func (r Retry) withDefaults() Retry {
	if r.Attempts < 1 {
		r.Attempts = 1
	}
	if r.Delay <= 0 {
		r.Delay = 200 * time.Millisecond
	}
	if r.MaxDelay <= 0 {
		r.MaxDelay = 2 * time.Second
	}
	return r
}

// Budget returns the longest time all attempts can take when each is bounded
// by timeout.
func (r Retry) Budget(timeout time.Duration) time.Duration {
	r = r.withDefaults()
	waits := time.Duration(r.Attempts-1) * (r.MaxDelay + r.MaxDelay/4)
	return time.Duration(r.Attempts)*timeout + waits
}

// delay returns the wait after the given failed attempt, with up to 25% jitter.
func (r Retry) delay(attempt int) time.Duration {
	d := r.Delay << (attempt - 1)
	if d <= 0 || d > r.MaxDelay {
		d = r.MaxDelay
	}
	// #nosec G404 -- jitter is non-cryptographic timing variance.
	if j := int64(d / 4); j > 0 {
		d += time.Duration(rand.Int64N(j))
	}
	return d
}

// do runs op until it succeeds or a failure is final.
func (r Retry) do(ctx context.Context, op func(context.Context) error) error {
	r = r.withDefaults()

	var err error
	for attempt := 1; attempt <= r.Attempts; attempt++ {
		if err = op(ctx); err == nil || !retryable(err) || attempt == r.Attempts {
			return err
		}

		wait := r.delay(attempt)
		if r.OnRetry != nil {
			r.OnRetry(attempt, err, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}
	}
	return err
}

// retryable reports whether another dial could succeed. Cancellation and
// certificate problems are final.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrNoPeerCertificate) {
		return false
	}

	var (
		unknownAuthority x509.UnknownAuthorityError
		hostname         x509.HostnameError
		invalid          x509.CertificateInvalidError
		verification     *tls.CertificateVerificationError
		alert            tls.AlertError
	)
	switch {
	case errors.As(err, &unknownAuthority),
		errors.As(err, &hostname),
		errors.As(err, &invalid),
		errors.As(err, &verification),
		errors.As(err, &alert):
		return false
	}
	return true
}
