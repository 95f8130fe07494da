package graceful_shutdown

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"samecity/internal/generated/dto"
)

const retryAfterSeconds = "5"

// Middleware rejects new requests once shutdown has begun and the ongoing
// context has been cancelled; requests already in flight are left to finish.
// Rejected clients are told to retry and to drop the keep-alive connection.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Connection", "close")
				w.Header().Set("Retry-After", retryAfterSeconds)
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(dto.Error{Message: "service is shutting down"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
