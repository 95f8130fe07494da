package timeout

import (
	"context"
	"errors"
	"net/http"
	"time"

	"samecity/internal/pkg/middlewares/route"
	"samecity/pkg/logger"
)

// Middleware bounds every request; provider and database calls downstream
// inherit the deadline through the request context. Requests that outlive
// it are counted and logged, the handler still owns the response.
func Middleware(log handlerLogger, timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				template := route.Template(r)
				RequestDeadlineExceededTotal.WithLabelValues(template).Inc()
				log.With(
					logger.NewField("method", r.Method),
					logger.NewField("route", template),
					logger.NewField("timeout", timeout.String()),
				).Warn("request deadline exceeded")
			}
		})
	}
}
