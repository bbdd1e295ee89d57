package escrow

import (
	"context"
	"fmt"

	"fulfillment/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Config struct {
	PlatformFeePercent decimal.Decimal
	CourierFlatFee     decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		PlatformFeePercent: decimal.NewFromInt(5),
		CourierFlatFee:     decimal.NewFromInt(50),
	}
}

// Ledger эскроу платежей. Вызывается только изнутри транзакций движка заказов.
type Ledger struct {
	repository Repository
	clock      Clock
	cfg        Config
}

func New(repository Repository, clock Clock, cfg Config) *Ledger {
	return &Ledger{
		repository: repository,
		clock:      clock,
		cfg:        cfg,
	}
}

func (l *Ledger) Split(total decimal.Decimal) (entities.PaymentSplit, error) {
	return Split(total, l.cfg.PlatformFeePercent, l.cfg.CourierFlatFee)
}

// Hold создает платеж в статусе held с зафиксированными долями.
func (l *Ledger) Hold(ctx context.Context, orderID uuid.UUID, total decimal.Decimal) (*entities.Payment, error) {
	split, err := l.Split(total)
	if err != nil {
		return nil, fmt.Errorf("split payment: %w", err)
	}

	payment := entities.Payment{
		ID:          uuid.New(),
		OrderID:     orderID,
		TotalAmount: total,
		Split:       split,
		Status:      entities.PaymentHeld,
		CreatedAt:   l.clock.Now(),
	}

	err = l.repository.Create(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	return &payment, nil
}

func (l *Ledger) Release(ctx context.Context, orderID uuid.UUID) (*entities.Payment, error) {
	payment, err := l.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	now := l.clock.Now()
	_, changed, err := Release(*payment, now)
	if err != nil {
		return nil, err
	}
	if !changed {
		return payment, nil
	}

	released, err := l.repository.MarkReleased(ctx, orderID, now)
	if err != nil {
		return nil, fmt.Errorf("mark payment %s released: %w", payment.ID, err)
	}

	return released, nil
}

func (l *Ledger) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entities.Payment, error) {
	payment, err := l.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return payment, nil
}
