package middleware

import (
	"net/http"
	"time"

	"webhook-verifier/internal/common/logging"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Logging logs all HTTP requests with method, path, status, and duration
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		fields := []logging.Field{
			{Key: "method", Value: r.Method},
			{Key: "path", Value: r.URL.Path},
			{Key: "status", Value: wrapped.statusCode},
			{Key: "duration_ms", Value: time.Since(start).Milliseconds()},
			{Key: "remote_addr", Value: r.RemoteAddr},
		}

		if ua := r.Header.Get("User-Agent"); ua != "" {
			fields = append(fields, logging.Field{Key: "user_agent", Value: ua})
		}

		logging.GetGlobalLogger().Info("HTTP request", fields...)
	})
}
