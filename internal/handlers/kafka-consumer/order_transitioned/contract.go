//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_transitioned_test
package order_transitioned

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Notifier interface {
	Fanout(ctx context.Context, transition entities.OrderTransition) ([]entities.Notification, error)
}
