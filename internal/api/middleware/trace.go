// Package middleware provides HTTP middleware for the API layer.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/qna-api/internal/api/shared"
)

// Trace adds a trace ID to the request context. Apply it early in the
// middleware chain so all subsequent handlers can correlate their logs.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		slog.Debug("request started",
			slog.String("trace_id", traceID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
