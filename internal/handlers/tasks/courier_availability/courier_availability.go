package courier_availability

import (
	"context"
	"time"

	"fulfillment/pkg/logger"
)

type Service interface {
	RepairAvailability(ctx context.Context) (int64, error)
}

// CourierAvailability возвращает в available курьеров, которые остались busy без активных заказов.
type CourierAvailability struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewCourierAvailability(log logger.Logger, service Service, interval time.Duration) *CourierAvailability {
	return &CourierAvailability{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (c *CourierAvailability) TTL() time.Duration {
	return c.interval
}

func (c *CourierAvailability) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	rowsAffected, err := c.service.RepairAvailability(ctxWithTimeout)

	if rowsAffected > 0 {
		c.log.With(
			logger.NewField("repaired_couriers", rowsAffected),
		).Warn("courier availability repaired")
	}

	return err
}

func (c *CourierAvailability) Info() string {
	return "courier availability"
}
