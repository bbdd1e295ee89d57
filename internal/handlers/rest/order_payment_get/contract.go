//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_payment_get_test
package order_payment_get

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"

	"github.com/google/uuid"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetPayment(ctx context.Context, actor entities.Actor, orderID uuid.UUID) (*entities.Payment, error)
}
