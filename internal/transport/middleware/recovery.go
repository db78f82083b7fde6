package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/wordloop/wordloop-backend/pkg/ctxutil"
)

// Recovery returns middleware that turns a handler panic into a 500
// response. The panic value and stack are logged together with the
// request id so the incident can be matched against the access log.
// The body uses the same {"error": ...} envelope as the REST handlers.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"error":"internal server error"}`))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
