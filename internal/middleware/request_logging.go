package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RequestLogging logs every request with a generated request id, method,
// path, status and latency.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()

		wrapped := &statusRecorder{ResponseWriter: w, statusCode: 200}
		wrapped.Header().Set("X-Request-ID", reqID)

		next.ServeHTTP(wrapped, r)

		log.Info().
			Str("request_id", reqID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapped.statusCode).
			Dur("latency", time.Since(start)).
			Str("remote", r.RemoteAddr).
			Msg("request")
	})
}
