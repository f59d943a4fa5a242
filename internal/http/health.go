package http

import (
	"context"
	"net/http"

	"github.com/tsc11539/redis-status/internal/render"
)

// Checker runs a Redis check. Implemented by status.Service.
type Checker interface {
	Check(ctx context.Context) render.Report
}

// healthzHandler responds with a simple "ok" message for health checks.
func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// readyzHandler reports ready only when Redis answers PING.
func readyzHandler(c Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := c.Check(r.Context())
		if !report.Result.OK {
			http.Error(w, "not ready: "+report.Result.Message, http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	}
}
