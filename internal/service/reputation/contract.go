//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reputation_test
package reputation

import (
	"context"
	"time"

	"fulfillment/internal/entities"

	"github.com/google/uuid"
)

type Repository interface {
	// Create возвращает entities.ErrDuplicateRating если оценка (rater, ratee, order) уже есть.
	Create(ctx context.Context, rating entities.Rating) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Rating, error)
	// UpdateScore условный апдейт по старой оценке, entities.ErrConcurrentModification если она изменилась.
	UpdateScore(ctx context.Context, edit entities.RatingEdit, expectedScore int, updatedAt time.Time) (*entities.Rating, error)
}

type ProfileRepository interface {
	Apply(ctx context.Context, rateeID string, role entities.Role, sumDelta, countDelta int64) (*entities.Reputation, error)
}

type CourierRepository interface {
	SetRating(ctx context.Context, courierID string, rating float64) error
}

type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type Clock interface {
	Now() time.Time
}
