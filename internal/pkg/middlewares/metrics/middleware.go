package metrics

import (
	"net/http"
	"strconv"
	"time"

	"samecity/internal/pkg/middlewares/route"
	"samecity/pkg/logger"
)

// Middleware records duration and count per route template and writes one
// access log line per request; 5xx responses are logged at warn.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			HTTPRequestsInFlight.Inc()
			defer HTTPRequestsInFlight.Dec()

			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			status := strconv.Itoa(rw.statusCode)
			template := route.Template(r)

			HTTPRequestDuration.WithLabelValues(r.Method, template, status).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, template, status).Inc()

			accessLog := log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", template),
				logger.NewField("status", rw.statusCode),
				logger.NewField("bytes", rw.written),
				logger.NewField("duration", duration.String()),
			)
			if rw.statusCode >= http.StatusInternalServerError {
				accessLog.Warn("HTTP request")
				return
			}
			accessLog.Info("HTTP request")
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += n
	return n, err
}
