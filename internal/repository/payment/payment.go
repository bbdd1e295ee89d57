package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, order_id, total_amount::text, seller_share::text, courier_share::text,
	platform_fee::text, status, transaction_ref, created_at, released_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, paymentEntity entities.Payment) error {
	paymentModel := FromDomain(&paymentEntity)
	query := `INSERT INTO payments (id, order_id, total_amount, seller_share, courier_share, platform_fee,
			status, transaction_ref, created_at, released_at)
		VALUES ($1, $2, $3::numeric, $4::numeric, $5::numeric, $6::numeric, $7, $8, $9, $10)`

	_, err := r.querier.Exec(
		ctx,
		query,
		paymentModel.ID,
		paymentModel.OrderID,
		paymentModel.TotalAmount,
		paymentModel.SellerShare,
		paymentModel.CourierShare,
		paymentModel.PlatformFee,
		paymentModel.Status,
		paymentModel.TransactionRef,
		paymentModel.CreatedAt,
		paymentModel.ReleasedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return fmt.Errorf("%w: payment for order %s already exists", entities.ErrConcurrentModification, paymentModel.OrderID)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return entities.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE order_id = $1`

	paymentModel, err := scanPayment(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository getbyorderid error: %w", err)
	}

	return ToDomain(&paymentModel)
}

// MarkReleased held -> released. Ноль строк значит платеж уже не held или отсутствует.
func (r *Repository) MarkReleased(ctx context.Context, orderID uuid.UUID, releasedAt time.Time) (*entities.Payment, error) {
	query := `UPDATE payments
		SET status = 'released',
			released_at = $2
		WHERE order_id = $1 AND status = 'held'
		RETURNING ` + paymentColumns

	paymentModel, err := scanPayment(r.querier.QueryRow(ctx, query, orderID, releasedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: payment for order %s is not held", entities.ErrConcurrentModification, orderID)
		}
		return nil, fmt.Errorf("unexpected payment repository mark released error: %w", err)
	}

	return ToDomain(&paymentModel)
}

func scanPayment(row pgx.Row) (PaymentDB, error) {
	var p PaymentDB
	err := row.Scan(
		&p.ID,
		&p.OrderID,
		&p.TotalAmount,
		&p.SellerShare,
		&p.CourierShare,
		&p.PlatformFee,
		&p.Status,
		&p.TransactionRef,
		&p.CreatedAt,
		&p.ReleasedAt,
	)
	return p, err
}
