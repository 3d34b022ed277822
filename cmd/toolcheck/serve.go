package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/jonwraymond/toolcheck/check"
	"github.com/jonwraymond/toolcheck/health"
	"github.com/jonwraymond/toolcheck/observe"
	"github.com/jonwraymond/toolcheck/probe"
)

func (a *app) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the configured targets as HTTP health endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := a.aggregator()
			if err != nil {
				return err
			}
			return a.serve(cmd.Context(), addr, agg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

// aggregator registers the process memory check and one TLS check per target.
func (a *app) aggregator() (*health.Aggregator, error) {
	timeout, err := a.cfg.AcquireTimeout()
	if err != nil {
		return nil, err
	}

	retry := probe.Retry{Attempts: a.cfg.Retries + 1}

	// The aggregator deadline leaves room for every target's own attempts.
	agg := health.NewAggregator(health.AggregatorConfig{
		Timeout:    retry.Budget(timeout) + time.Second,
		Parallel:   true,
		Namespace:  "serve",
		Middleware: a.mw,
	})

	if err := agg.Register(health.NewMemoryChecker(health.MemoryCheckerConfig{})); err != nil {
		return nil, err
	}
	for _, target := range a.cfg.Targets {
		opts := probe.Options{Timeout: timeout, Retry: retry}
		opts.Retry.OnRetry = a.logRetry(context.Background(), target)
		checker := health.NewCheckerFunc(probe.HostPort(target), func(ctx context.Context) check.Collection {
			coll, err := targetCollection(ctx, a.checks, target, opts, time.Now)
			if err != nil {
				return check.NewCollection(check.Unknown(check.NewSummary(err.Error())))
			}
			return coll
		})
		if err := agg.Register(checker); err != nil {
			return nil, err
		}
	}
	return agg, nil
}

func (a *app) serve(ctx context.Context, addr string, agg *health.Aggregator) error {
	mux := http.NewServeMux()
	health.RegisterHandlers(mux, agg)
	if a.cfg.Observe.Metrics.Enabled && a.cfg.Observe.Metrics.Exporter == "prometheus" {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "serving health endpoints",
			observe.Field{Key: "addr", Value: addr},
			observe.Field{Key: "checks", Value: agg.CheckerNames()},
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		a.logger.Info(ctx, "shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
