package middleware

import (
	"log/slog"
	"net/http"

	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
)

// Trace adds a trace ID to the request context and a trace-tagged logger so
// every log line downstream can be correlated to the request. Apply it early
// in the middleware chain.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
