package rate_limiter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fulfillment/internal/dto/rest"
	"fulfillment/internal/pkg/middlewares/request_scope"
	"fulfillment/pkg/logger"

	"github.com/gorilla/mux"
)

var rateLimitedBody, _ = json.Marshal(rest.Error{
	Error:   "rate_limited",
	Message: "too many requests, retry later",
})

// Middleware отвечает 429, когда Limiter исчерпан. qps уходит клиенту в X-RateLimit-Limit.
func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	log = log.With(logger.NewField("middleware", "rate_limiter"))
	limit := strconv.Itoa(qps)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if template, err := current.GetPathTemplate(); err == nil {
					route = template
				}
			}
			RejectedTotal.WithLabelValues(r.Method, route).Inc()

			requestID, _ := request_scope.RequestID(r.Context())
			log.Warn("request rejected by rate limiter",
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
				logger.NewField("request_id", requestID),
			)

			w.Header().Set("X-RateLimit-Limit", limit)
			w.Header().Set("Retry-After", "1")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write(rateLimitedBody)
		})
	}
}
