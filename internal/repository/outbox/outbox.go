package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fulfillment/internal/dto/events"
	"fulfillment/internal/entities"

	"github.com/google/uuid"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Add пишет событие перехода. Вызывается в транзакции перехода.
func (r *Repository) Add(ctx context.Context, transition entities.OrderTransition) error {
	payload, err := json.Marshal(events.FromDomain(transition))
	if err != nil {
		return fmt.Errorf("marshal transition %s: %w", transition.ID, err)
	}

	query := `INSERT INTO outbox (id, order_id, event, payload, created_at)
		VALUES ($1, $2, $3, $4::jsonb, $5)`

	_, err = r.querier.Exec(
		ctx,
		query,
		transition.ID,
		transition.Order.ID,
		transition.Event.String(),
		string(payload),
		transition.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository add error: %w", err)
	}
	return nil
}

// ClaimUnpublished блокирует до limit старейших неопубликованных событий.
// Строки, занятые другим релеем, пропускаются.
func (r *Repository) ClaimUnpublished(ctx context.Context, limit int) ([]entities.OutboxMessage, error) {
	query := `SELECT id, order_id, event, payload::text, created_at
		FROM outbox
		WHERE published_at IS NULL
		ORDER BY created_at, id
		LIMIT $1
		FOR UPDATE SKIP LOCKED`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository claim error: %w", err)
	}
	defer rows.Close()

	messages := make([]entities.OutboxMessage, 0, limit)
	for rows.Next() {
		var m MessageDB
		if err := rows.Scan(&m.ID, &m.OrderID, &m.Event, &m.Payload, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("unexpected outbox repository claim error: %w", err)
		}
		messages = append(messages, entities.OutboxMessage{
			ID:        m.ID,
			OrderID:   m.OrderID,
			Event:     entities.OrderEvent(m.Event),
			Payload:   []byte(m.Payload),
			CreatedAt: m.CreatedAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected outbox repository claim error: %w", err)
	}
	return messages, nil
}

func (r *Repository) MarkPublished(ctx context.Context, ids []uuid.UUID, publishedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}

	query := `UPDATE outbox SET published_at = $2 WHERE id = ANY($1::uuid[]) AND published_at IS NULL`

	if _, err := r.querier.Exec(ctx, query, raw, publishedAt); err != nil {
		return fmt.Errorf("unexpected outbox repository mark published error: %w", err)
	}
	return nil
}
