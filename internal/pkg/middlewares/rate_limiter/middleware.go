package rate_limiter

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"samecity/internal/pkg/middlewares/route"
	"samecity/pkg/logger"
)

// KeyFunc picks the bucket a request is charged to.
type KeyFunc func(r *http.Request) string

// ByRouteVar charges requests per path variable, e.g. per webhook provider.
func ByRouteVar(name string) KeyFunc {
	return func(r *http.Request) string {
		return mux.Vars(r)[name]
	}
}

func Middleware(log handlerLogger, rateLimiterQPS int, limiter Limiter, key KeyFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bucket := key(r)
			if limiter.Allow(bucket) {
				next.ServeHTTP(w, r)
				return
			}

			template := route.Template(r)

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", template),
				logger.NewField("key", bucket),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			RateLimitExceededTotal.WithLabelValues(template, bucket).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			_, err := w.Write([]byte(`{"message":"rate limit exceeded, try again later"}`))
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}
