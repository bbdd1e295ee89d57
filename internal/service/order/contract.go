//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"fulfillment/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	// ListByParty заказы, где actor покупатель, продавец или курьер по его роли. Админу все.
	ListByParty(ctx context.Context, actor entities.Actor, status *entities.OrderStatus, limit uint64) ([]entities.Order, error)
	// Update пишет заказ только если в хранилище те же version и status, что были прочитаны.
	// Возвращает заказ с увеличенной версией или entities.ErrConcurrentModification.
	Update(ctx context.Context, order entities.Order, expectedStatus entities.OrderStatus) (*entities.Order, error)
}

type OutboxRepository interface {
	Add(ctx context.Context, transition entities.OrderTransition) error
}

type Escrow interface {
	Hold(ctx context.Context, orderID uuid.UUID, total decimal.Decimal) (*entities.Payment, error)
	Release(ctx context.Context, orderID uuid.UUID) (*entities.Payment, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entities.Payment, error)
}

type Matcher interface {
	Candidates(ctx context.Context, order *entities.Order) ([]entities.Candidate, error)
	Assign(ctx context.Context, order *entities.Order, courierID string) (*entities.Order, error)
	Release(ctx context.Context, release entities.CourierRelease) (*entities.Courier, error)
}

type CodeGenerator interface {
	PickupCode() (string, error)
	DeliveryCode() (string, error)
}

type CatalogGateway interface {
	GetSeller(ctx context.Context, sellerID string) (*entities.Seller, error)
	GetProducts(ctx context.Context, productIDs []string) ([]entities.Product, error)
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
