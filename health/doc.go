// Package health runs named checks and serves their verdicts over HTTP.
//
// A Checker acquires a measurement and evaluates it with the check engine,
// returning a check.Collection. The Aggregator runs registered checkers with
// a timeout, optionally in parallel, and folds their collections into one
// overall verdict.
//
// # Basic Usage
//
//	agg := health.NewAggregator()
//	agg.Register(health.NewMemoryChecker(health.MemoryCheckerConfig{}))
//	agg.Register(health.NewCheckerFunc("tls", func(ctx context.Context) check.Collection {
//	    return certificate.Check(info, time.Now(), cfg)
//	}))
//
//	results := agg.CheckAll(ctx)
//	overall := health.Overall(results)
//	fmt.Println(overall.String())
//
// # HTTP Endpoints
//
//	// Liveness probe
//	http.Handle("/healthz", health.LivenessHandler())
//
//	// Plugin-style text, 200 for OK/WARNING and 503 otherwise
//	http.Handle("/status", health.StatusHandler(agg))
//
//	// Per-check JSON
//	http.Handle("/health", health.DetailedHandler(agg))
package health
