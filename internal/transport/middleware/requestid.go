package middleware

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hrms-backend/pkg/logger"

	"github.com/google/uuid"
)

const TraceIDHeader = "X-Trace-ID"

// RequestID echoes or assigns an X-Trace-ID and puts a logger scoped to it
// in the request context.
func RequestID(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}
			w.Header().Set(TraceIDHeader, traceID)

			ctx := logger.NewContext(r.Context(), base.With("request_id", traceID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
