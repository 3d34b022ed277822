package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jonwraymond/toolcheck/check"
)

// LivenessHandler returns an HTTP handler for liveness probes.
// This is a simple check that the service is running.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

// statusCode maps a state to an HTTP status: OK and WARNING are served,
// CRITICAL and UNKNOWN are not.
func statusCode(s check.State) int {
	switch s {
	case check.StateOK, check.StateWarn:
		return http.StatusOK
	default:
		return http.StatusServiceUnavailable
	}
}

// StatusHandler returns an HTTP handler that runs all checks and writes the
// overall plugin output as text.
func StatusHandler(agg *Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		overall := Overall(agg.CheckAll(ctx))

		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(statusCode(overall.State()))
		_, _ = w.Write([]byte(overall.String()))
	}
}

// HealthResponse is the JSON response for the detailed endpoint.
type HealthResponse struct {
	State     string          `json:"state"`
	ExitCode  int             `json:"exit_code"`
	Summary   string          `json:"summary,omitempty"`
	Timestamp string          `json:"timestamp"`
	Checks    []CheckResponse `json:"checks,omitempty"`
}

// CheckResponse is the JSON response for a single check.
type CheckResponse struct {
	Name     string   `json:"name"`
	State    string   `json:"state"`
	Summary  string   `json:"summary,omitempty"`
	Details  []string `json:"details,omitempty"`
	Perf     []string `json:"perf,omitempty"`
	Duration string   `json:"duration,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func newCheckResponse(r Result) CheckResponse {
	resp := CheckResponse{
		Name:     r.Name,
		State:    r.State().String(),
		Summary:  r.Collection.Summary(),
		Details:  r.Collection.Details(),
		Duration: r.Duration.String(),
	}
	for _, p := range r.Collection.Metrics() {
		resp.Perf = append(resp.Perf, p.String())
	}
	if r.Error != nil {
		resp.Error = r.Error.Error()
	}
	return resp
}

// DetailedHandler returns an HTTP handler that reports every check as JSON.
func DetailedHandler(agg *Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		results := agg.CheckAll(ctx)
		overall := Overall(results)
		state := overall.State()

		response := HealthResponse{
			State:     state.String(),
			ExitCode:  state.ExitCode(),
			Summary:   overall.Summary(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Checks:    make([]CheckResponse, 0, len(results)),
		}
		for _, result := range results {
			response.Checks = append(response.Checks, newCheckResponse(result))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode(state))
		_ = json.NewEncoder(w).Encode(response)
	}
}

// SingleCheckHandler returns an HTTP handler for one named check.
func SingleCheckHandler(agg *Aggregator, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveCheck(w, r, agg, name)
	}
}

// CheckHandler returns an HTTP handler for the check named by the {name}
// path wildcard, e.g. mounted at "/health/{name}".
func CheckHandler(agg *Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveCheck(w, r, agg, r.PathValue("name"))
	}
}

func serveCheck(w http.ResponseWriter, r *http.Request, agg *Aggregator, name string) {
	result, err := agg.Check(r.Context(), name)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode(result.State()))
	_ = json.NewEncoder(w).Encode(newCheckResponse(result))
}

// RegisterHandlers registers all handlers on the given mux.
func RegisterHandlers(mux *http.ServeMux, agg *Aggregator) {
	mux.HandleFunc("GET /healthz", LivenessHandler())
	mux.HandleFunc("GET /status", StatusHandler(agg))
	mux.HandleFunc("GET /health", DetailedHandler(agg))
	mux.HandleFunc("GET /health/{name}", CheckHandler(agg))
}
