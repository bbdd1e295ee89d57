package notification

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const notificationColumns = `id, recipient_id, recipient_role, order_id, event, message, read, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// CreateBatch пишет уведомления одного перехода одним раундтрипом.
func (r *Repository) CreateBatch(ctx context.Context, notifications []entities.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	query := `INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`

	batch := &pgx.Batch{}
	for i := range notifications {
		m := FromDomain(&notifications[i])
		batch.Queue(query, m.ID, m.RecipientID, m.RecipientRole, m.OrderID, m.Event, m.Message, m.Read, m.CreatedAt)
	}

	results := r.querier.SendBatch(ctx, batch)
	for range notifications {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return fmt.Errorf("unexpected notification repository create batch error: %w", err)
		}
	}

	if err := results.Close(); err != nil {
		return fmt.Errorf("unexpected notification repository create batch error: %w", err)
	}
	return nil
}

// ListByRecipient новые сверху.
func (r *Repository) ListByRecipient(
	ctx context.Context,
	recipient entities.Recipient,
	unreadOnly bool,
	limit uint64,
) ([]entities.Notification, error) {
	builder := qb.
		Select(notificationColumns).
		From("notifications").
		Where(sq.Eq{
			"recipient_id":   recipient.ID,
			"recipient_role": recipient.Role.String(),
		}).
		OrderBy("created_at DESC", "id").
		Limit(limit)

	if unreadOnly {
		builder = builder.Where(sq.Eq{"read": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	models := make([]NotificationDB, 0, min(limit, 64))
	for rows.Next() {
		m, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
		}
		models = append(models, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	return ToDomainList(models), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`

	m, err := scanNotification(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("unexpected notification repository getbyid error: %w", err)
	}

	return ToDomain(&m), nil
}

func (r *Repository) MarkRead(ctx context.Context, id uuid.UUID) (*entities.Notification, error) {
	query := `UPDATE notifications SET read = TRUE WHERE id = $1 RETURNING ` + notificationColumns

	m, err := scanNotification(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("unexpected notification repository mark read error: %w", err)
	}

	return ToDomain(&m), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNotification(row scanner) (NotificationDB, error) {
	var m NotificationDB
	err := row.Scan(
		&m.ID,
		&m.RecipientID,
		&m.RecipientRole,
		&m.OrderID,
		&m.Event,
		&m.Message,
		&m.Read,
		&m.CreatedAt,
	)
	return m, err
}
