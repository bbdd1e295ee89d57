package request_scope

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// длиннее не принимаем, чтобы клиент не раздувал логи
const maxRequestIDLength = 64

type requestIDKey struct{}

// Middleware ограничивает запрос дедлайном и проставляет ему идентификатор.
// Идентификатор берется из X-Request-ID клиента или генерируется.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(HeaderRequestID)
			if requestID == "" || len(requestID) > maxRequestIDLength {
				requestID = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, requestID)

			// r.Context() наследует ongoingCtx из BaseContext
			ctx, cancel := context.WithTimeout(WithRequestID(r.Context(), requestID), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey{}).(string)
	return requestID, ok
}
