package metrics

import (
	"net/http"
	"strconv"
	"time"

	"fulfillment/internal/pkg/middlewares/request_scope"
	"fulfillment/pkg/logger"

	"github.com/gorilla/mux"
)

func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	log = log.With(logger.NewField("middleware", "metrics"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			elapsed := time.Since(start)
			route := routeTemplate(r)
			status := strconv.Itoa(recorder.status)

			HTTPRequestDuration.WithLabelValues(r.Method, route, status).Observe(elapsed.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, route, status).Inc()
			HTTPResponseSize.WithLabelValues(r.Method, route).Observe(float64(recorder.written))

			fields := []logger.Field{
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("status", recorder.status),
				logger.NewField("bytes", recorder.written),
				logger.NewField("duration", elapsed.String()),
			}
			if requestID, ok := request_scope.RequestID(r.Context()); ok {
				fields = append(fields, logger.NewField("request_id", requestID))
			}
			log.Info("HTTP request", fields...)
		})
	}
}

// routeTemplate шаблон роута вместо пути, чтобы id заказов не раздували кардинальность.
func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unmatched"
	}
	template, err := route.GetPathTemplate()
	if err != nil {
		return "unmatched"
	}
	return template
}

type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	n, err := s.ResponseWriter.Write(b)
	s.written += n
	return n, err
}
