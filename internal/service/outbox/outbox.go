package outbox

import (
	"context"
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"

	"github.com/google/uuid"
)

const defaultBatchSize = 100

type Relay struct {
	repository Repository
	publisher  Publisher
	txManager  TxManager
	clock      Clock
	batchSize  int
	log        logger.Logger
}

func New(
	repository Repository,
	publisher Publisher,
	txManager TxManager,
	clock Clock,
	batchSize int,
	log logger.Logger,
) *Relay {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Relay{
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
		clock:      clock,
		batchSize:  batchSize,
		log:        log,
	}
}

// Relay публикует одну пачку событий. Строки помечаются опубликованными в той же
// транзакции, в которой были заблокированы, поэтому при сбое публикации пачка
// будет отправлена повторно (at-least-once).
func (r *Relay) Relay(ctx context.Context) (int, error) {
	var relayed []entities.OutboxMessage

	err := r.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		messages, err := r.repository.ClaimUnpublished(ctx, r.batchSize)
		if err != nil {
			return fmt.Errorf("claim unpublished: %w", err)
		}
		if len(messages) == 0 {
			return nil
		}

		if err := r.publisher.PublishBatch(ctx, messages); err != nil {
			return fmt.Errorf("publish batch: %w", err)
		}

		ids := make([]uuid.UUID, 0, len(messages))
		for _, m := range messages {
			ids = append(ids, m.ID)
		}

		if err := r.repository.MarkPublished(ctx, ids, r.clock.Now()); err != nil {
			return fmt.Errorf("mark published: %w", err)
		}

		relayed = messages
		return nil
	})
	if err != nil {
		return 0, err
	}

	if len(relayed) > 0 {
		outboxLag.Set(r.clock.Now().Sub(relayed[0].CreatedAt).Seconds())
		for _, m := range relayed {
			outboxRelayed.WithLabelValues(m.Event.String()).Inc()
		}
		r.log.Debug("outbox batch relayed", logger.NewField("count", len(relayed)))
	} else {
		outboxLag.Set(0)
	}

	return len(relayed), nil
}
