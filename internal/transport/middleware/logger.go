package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/imagecraft-backend/pkg/ctxutil"
)

// httpObserver receives one observation per finished request.
type httpObserver interface {
	ObserveHTTP(method string, status int, seconds float64)
}

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration and context identifiers, and reports it to obs.
func Logger(logger *slog.Logger, obs httpObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			duration := time.Since(start)
			if obs != nil {
				obs.ObserveHTTP(r.Method, sw.status, duration.Seconds())
			}

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", duration),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if ip := ctxutil.ClientIPFromCtx(r.Context()); ip != "" {
				attrs = append(attrs, slog.String("client_ip", ip))
			}
			if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			}

			level := slog.LevelInfo
			switch {
			case sw.status >= 500:
				level = slog.LevelError
			case sw.status >= 400:
				level = slog.LevelWarn
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}
