//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rating_put_test
package rating_put

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

type Service interface {
	EditRating(ctx context.Context, actor entities.Actor, edit entities.RatingEdit) (*entities.RatingResult, error)
}
