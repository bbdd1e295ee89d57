package matcher

import (
	"context"
	"fmt"

	"fulfillment/internal/entities"
)

// Matcher подбирает и закрепляет курьеров за заказами. Методы Assign и Release
// рассчитаны на вызов внутри транзакции движка заказов.
type Matcher struct {
	couriers CourierRepository
}

func New(couriers CourierRepository) *Matcher {
	return &Matcher{
		couriers: couriers,
	}
}

func (m *Matcher) Candidates(ctx context.Context, order *entities.Order) ([]entities.Candidate, error) {
	couriers, err := m.couriers.GetAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available couriers: %w", err)
	}

	return Rank(order, couriers), nil
}

// Assign резервирует курьера и возвращает обновленную копию заказа.
// Исходный заказ не меняется.
func (m *Matcher) Assign(ctx context.Context, order *entities.Order, courierID string) (*entities.Order, error) {
	courier, err := m.couriers.Reserve(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("reserve courier %s: %w", courierID, err)
	}

	return ApplyAssignment(order, *courier), nil
}

func (m *Matcher) Release(ctx context.Context, release entities.CourierRelease) (*entities.Courier, error) {
	courier, err := m.couriers.Release(ctx, release)
	if err != nil {
		return nil, fmt.Errorf("release courier %s: %w", release.CourierID, err)
	}

	return courier, nil
}
