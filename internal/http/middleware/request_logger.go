package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/blackos-labs/agency-backoffice/pkg/logging"
)

// loggerWriter captures the status code and body size written by the
// downstream handler.
type loggerWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *loggerWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *loggerWriter) Write(p []byte) (int, error) {
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// RequestLogger emits one structured log line per completed request with
// the status, size and latency. Server errors log at error level and
// client errors at warn so failures stand out in the stream. Health and
// metrics scrapes are skipped to keep the logs readable.
func RequestLogger(logger *logging.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" || r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			reqID := chimiddleware.GetReqID(r.Context())
			if reqID == "" {
				reqID = uuid.NewString()
			}

			start := time.Now()
			lw := &loggerWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(lw, r)

			logFn := logger.Info
			switch {
			case lw.status >= http.StatusInternalServerError:
				logFn = logger.Error
			case lw.status >= http.StatusBadRequest:
				logFn = logger.Warn
			}
			logFn("request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", lw.status,
				"bytes", lw.bytes,
				"request_id", reqID,
				"remote_ip", r.RemoteAddr,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
