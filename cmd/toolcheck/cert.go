package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/toolcheck/certificate"
	"github.com/jonwraymond/toolcheck/check"
	"github.com/jonwraymond/toolcheck/config"
	"github.com/jonwraymond/toolcheck/observe"
	"github.com/jonwraymond/toolcheck/probe"
	"github.com/jonwraymond/toolcheck/responsetime"
)

func (a *app) certCommand() *cobra.Command {
	var (
		opts    probe.Options
		retries int
	)

	cmd := &cobra.Command{
		Use:   "cert HOST[:PORT]",
		Short: "Check TLS response time and the server certificate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Timeout == 0 {
				t, err := a.cfg.AcquireTimeout()
				if err != nil {
					return err
				}
				opts.Timeout = t
			}
			if !cmd.Flags().Changed("retries") {
				retries = a.cfg.Retries
			}
			opts.Retry.Attempts = retries + 1
			opts.Retry.OnRetry = a.logRetry(cmd.Context(), args[0])
			coll := a.checkTarget(cmd.Context(), args[0], opts)
			return a.emit(cmd.Context(), coll)
		},
	}

	cmd.Flags().DurationVarP(&opts.Timeout, "timeout", "t", 0, "dial and handshake timeout (default from config)")
	cmd.Flags().StringVar(&opts.ServerName, "sni", "", "server name to send instead of HOST")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "verify the certificate chain")
	cmd.Flags().IntVar(&retries, "retries", 0, "extra dials after a connection failure (default from config)")
	return cmd
}

func (a *app) logRetry(ctx context.Context, target string) func(int, error, time.Duration) {
	return func(attempt int, err error, delay time.Duration) {
		a.logger.Warn(ctx, "dial failed, retrying",
			observe.Field{Key: "target", Value: target},
			observe.Field{Key: "attempt", Value: attempt},
			observe.Field{Key: "delay", Value: delay.String()},
			observe.Field{Key: "error", Value: err.Error()},
		)
	}
}

// checkTarget performs the handshake and evaluates response time and
// certificate of addr.
func (a *app) checkTarget(ctx context.Context, addr string, opts probe.Options) check.Collection {
	meta := observe.CheckMeta{Namespace: "tls", Name: "certificate", Target: probe.HostPort(addr)}
	return a.evaluate(ctx, meta, func(ctx context.Context, meta observe.CheckMeta) (check.Collection, error) {
		return targetCollection(ctx, a.checks, addr, opts, time.Now)
	})
}

func targetCollection(ctx context.Context, checks *config.Checks, addr string, opts probe.Options, now func() time.Time) (check.Collection, error) {
	res, err := probe.TLS(ctx, addr, opts)
	if err != nil {
		return check.Collection{}, fmt.Errorf("connection failed: %w", err)
	}
	return responsetime.Check(res.ResponseTime, checks.ResponseTime).
		Join(certificate.Check(res.Certificate, now(), checks.Certificate)), nil
}
