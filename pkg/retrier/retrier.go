package retrier

import (
	"context"
	"errors"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// 0 - ограничение только по MaxElapsedTime, иначе не больше MaxRetries повторов после первой попытки
	MaxRetries uint64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc

	// вызывается перед каждым повтором, attempt считается с 1
	OnRetry func(err error, attempt int, wait time.Duration)
}

// RetryOn ретраит только ошибки, совпадающие (errors.Is) с одной из targets.
func RetryOn(targets ...error) ShouldRetryFunc {
	return func(err error) bool {
		for _, target := range targets {
			if errors.Is(err, target) {
				return true
			}
		}
		return false
	}
}
