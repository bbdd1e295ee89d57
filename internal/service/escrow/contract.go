//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=escrow_test
package escrow

import (
	"context"
	"time"

	"fulfillment/internal/entities"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, payment entities.Payment) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entities.Payment, error)
	// MarkReleased условный апдейт held -> released, ErrConcurrentModification если статус уже другой.
	MarkReleased(ctx context.Context, orderID uuid.UUID, releasedAt time.Time) (*entities.Payment, error)
}

type Clock interface {
	Now() time.Time
}
