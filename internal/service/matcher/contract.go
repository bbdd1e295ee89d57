//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matcher_test
package matcher

import (
	"context"

	"fulfillment/internal/entities"
)

type CourierRepository interface {
	GetAvailable(ctx context.Context) ([]entities.Courier, error)
	// Reserve условный перевод available -> busy с active_assignments+1.
	// entities.ErrCourierUnavailable если к моменту записи курьер уже не available.
	Reserve(ctx context.Context, courierID string) (*entities.Courier, error)
	Release(ctx context.Context, release entities.CourierRelease) (*entities.Courier, error)
}
