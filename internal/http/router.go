package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tsc11539/redis-status/internal/status"
)

// NewRouter creates and configures a new HTTP router.
// service backs "/" and readiness; redisCheck backs "/redis-check".
func NewRouter(service, redisCheck *status.Service) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	// Health check endpoints
	r.Get("/healthz", healthzHandler)
	r.Get("/readyz", readyzHandler(service))

	// Status pages
	r.Get("/", statusHandler(service))
	r.Get("/redis-check", statusHandler(redisCheck))

	return r
}
