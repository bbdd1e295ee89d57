package graceful_shutdown

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"fulfillment/internal/dto/rest"
)

var shuttingDownBody, _ = json.Marshal(rest.Error{
	Error:   "shutting_down",
	Message: "service is shutting down, retry on another instance",
})

// Middleware после отмены ongoingCtx отвечает 503 на новые запросы и закрывает соединение,
// чтобы балансировщик переотправил запрос на живой инстанс.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context, retryAfter time.Duration) func(http.Handler) http.Handler {
	retryAfterSeconds := strconv.Itoa(int(retryAfter.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ongoingCtx.Err() != nil && isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				w.Header().Set("Retry-After", retryAfterSeconds)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write(shuttingDownBody)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
