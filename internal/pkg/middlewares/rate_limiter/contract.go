package rate_limiter

import "fulfillment/pkg/logger"

// Limiter общий бюджет запросов инстанса.
type Limiter interface {
	Allow() bool
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
