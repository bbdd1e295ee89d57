//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifications_test
package notifications

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type client interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}
