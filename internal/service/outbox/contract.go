//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_test
package outbox

import (
	"context"
	"time"

	"fulfillment/internal/entities"

	"github.com/google/uuid"
)

type Repository interface {
	// ClaimUnpublished блокирует старейшие неопубликованные события до конца транзакции.
	ClaimUnpublished(ctx context.Context, limit int) ([]entities.OutboxMessage, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID, publishedAt time.Time) error
}

// Publisher журнал событий, ключ сообщения id заказа.
type Publisher interface {
	PublishBatch(ctx context.Context, messages []entities.OutboxMessage) error
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}

type Clock interface {
	Now() time.Time
}
