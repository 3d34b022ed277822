// Package probe acquires the measurements the checks evaluate.
package probe

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/jonwraymond/toolcheck/certificate"
)

// DefaultPort is used when an address has no port.
const DefaultPort = "443"

var (
	// ErrNoPeerCertificate indicates the server presented no certificate.
	ErrNoPeerCertificate = errors.New("probe: server presented no certificate")
)

// TLSResult is the outcome of a TLS handshake.
type TLSResult struct {
	// ResponseTime covers the TCP connect and the handshake.
	ResponseTime time.Duration

	// Certificate describes the leaf certificate.
	Certificate certificate.Info
}

// Options configure TLS.
type Options struct {
	// Timeout bounds each dial and handshake. Zero means the context deadline only.
	Timeout time.Duration

	// Retry repeats the dial on transient connection failures.
	Retry Retry

	// ServerName overrides SNI; defaults to the host part of the address.
	ServerName string

	// Verify enables chain verification. Certificates are inspected, not
	// trusted, so verification is off by default.
	Verify bool
}

// HostPort appends DefaultPort to addr when it has none.
func HostPort(addr string) string {
	if _, _, err := net.SplitHostPort(addr); err == nil {
		return addr
	}
	return net.JoinHostPort(addr, DefaultPort)
}

// TLS connects to addr, completes a handshake and reports the leaf certificate
// and how long it took.
func TLS(ctx context.Context, addr string, opts Options) (TLSResult, error) {
	addr = HostPort(addr)
	host, _, _ := net.SplitHostPort(addr)

	serverName := opts.ServerName
	if serverName == "" {
		serverName = host
	}

	dialer := &tls.Dialer{
		Config: &tls.Config{
			ServerName:         serverName,
			InsecureSkipVerify: !opts.Verify, //nolint:gosec // certificates are inspected, not trusted
		},
	}

	var res TLSResult
	err := opts.Retry.do(ctx, func(ctx context.Context) error {
		var err error
		res, err = handshake(ctx, dialer, addr, opts.Timeout)
		return err
	})
	if err != nil {
		return TLSResult{}, err
	}
	return res, nil
}

func handshake(ctx context.Context, dialer *tls.Dialer, addr string, timeout time.Duration) (TLSResult, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return TLSResult{}, fmt.Errorf("probe: %s: %w", addr, err)
	}
	elapsed := time.Since(start)
	defer conn.Close()

	state := conn.(*tls.Conn).ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return TLSResult{}, fmt.Errorf("%w: %s", ErrNoPeerCertificate, addr)
	}

	return TLSResult{
		ResponseTime: elapsed,
		Certificate:  certificate.InfoFromX509(state.PeerCertificates[0]),
	}, nil
}
