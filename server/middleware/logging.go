package middleware

import (
	"net/http"
	"time"

	"github.com/dygo/dykit/logger"
)

// RequestLogger logs every request with method, path, status, and duration.
// Health probe paths are skipped. A nil log uses the global logger.
func RequestLogger(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isHealthEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)
			duration := time.Since(start)

			fields := logger.Fields(
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration_ms", duration.Milliseconds(),
			)
			if id := r.Header.Get(HeaderRequestID); id != "" {
				fields["request_id"] = id
			}
			if duration > 500*time.Millisecond {
				fields["slow"] = true
			}

			logByStatus(log, fields, sw.status)
		})
	}
}

func isHealthEndpoint(path string) bool {
	switch path {
	case "/health", "/alive", "/ready":
		return true
	}
	return false
}

// logByStatus picks the log level from the HTTP status code.
func logByStatus(log *logger.Logger, fields map[string]interface{}, status int) {
	logErr := logger.Error
	logWarn := logger.Warn
	logDebug := logger.Debug
	if log != nil {
		logErr = log.Error
		logWarn = log.Warn
		logDebug = log.Debug
	}

	switch {
	case status >= 500:
		logErr("Request completed", fields)
	case status >= 400:
		logWarn("Request completed", fields)
	default:
		logDebug("Request completed", fields)
	}
}
