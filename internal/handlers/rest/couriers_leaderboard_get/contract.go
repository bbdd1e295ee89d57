//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=couriers_leaderboard_get_test
package couriers_leaderboard_get

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
	Leaderboard(ctx context.Context, limit int) ([]entities.LeaderboardEntry, error)
}
