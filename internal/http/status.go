package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/tsc11539/redis-status/internal/logger"
	"github.com/tsc11539/redis-status/internal/status"
)

// Responder renders a status page. Implemented by status.Service.
type Responder interface {
	Respond(ctx context.Context) status.Response
}

// statusHandler writes the rendered status page. Query and body are ignored.
func statusHandler(svc Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if reqID := middleware.GetReqID(ctx); reqID != "" {
			ctx = logger.WithRequestID(ctx, reqID)
		}

		resp := svc.Respond(ctx)
		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		w.Write([]byte(resp.Body))
	}
}
