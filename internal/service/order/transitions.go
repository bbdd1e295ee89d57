package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/verification"
	"fulfillment/pkg/logger"

	"github.com/google/uuid"
)

// step применяет переход к копии заказа. Возвращает новое состояние заказа
// и курьера, снятого с заказа (при переназначении).
type step func(ctx context.Context, current *entities.Order, now time.Time) (next *entities.Order, previousCourierID *string, err error)

// AssignCourier назначает или переназначает курьера. Прежний курьер освобождается.
func (s *Service) AssignCourier(ctx context.Context, actor entities.Actor, orderID uuid.UUID, courierID string) (*entities.Order, error) {
	if !isValidID(courierID) {
		return nil, ErrInvalidCourierID
	}

	return s.transition(ctx, orderID, entities.EventCourierAssigned, func(ctx context.Context, current *entities.Order, _ time.Time) (*entities.Order, *string, error) {
		if !actor.IsAdmin() && current.SellerID != actor.ID {
			return nil, nil, fmt.Errorf("%w: only the seller assigns couriers", entities.ErrForbidden)
		}
		if current.Status.IsTerminal() {
			return nil, nil, fmt.Errorf("%w: order is %s", entities.ErrInvalidTransition, current.Status)
		}
		if current.IsCourier(courierID) {
			return nil, nil, fmt.Errorf("%w: courier %s is already assigned", entities.ErrInvalidTransition, courierID)
		}

		next, err := s.matcher.Assign(ctx, current, courierID)
		if err != nil {
			return nil, nil, err
		}

		previous := current.CourierID
		if previous != nil {
			_, err = s.matcher.Release(ctx, entities.CourierRelease{CourierID: *previous})
			if err != nil {
				return nil, nil, err
			}
		}

		return next, previous, nil
	})
}

func (s *Service) ConfirmPickup(ctx context.Context, actor entities.Actor, orderID uuid.UUID, code string) (*entities.Order, error) {
	return s.transition(ctx, orderID, entities.EventPickupConfirmed, func(_ context.Context, current *entities.Order, now time.Time) (*entities.Order, *string, error) {
		if !current.IsCourier(actor.ID) {
			return nil, nil, fmt.Errorf("%w: only the assigned courier confirms pickup", entities.ErrForbidden)
		}
		if current.Status != entities.OrderAssigned {
			return nil, nil, fmt.Errorf("%w: order is %s", entities.ErrInvalidTransition, current.Status)
		}
		if !verification.Verify(code, current.PickupCode) {
			return nil, nil, entities.ErrCodeMismatch
		}

		next := current.Clone()
		next.Status = entities.OrderInTransit
		next.PickupConfirmed = true
		next.PickupTime = &now

		return next, nil, nil
	})
}

// ConfirmDelivery завершает заказ: выпускает платеж из эскроу и освобождает курьера.
func (s *Service) ConfirmDelivery(ctx context.Context, actor entities.Actor, orderID uuid.UUID, code string) (*entities.Order, error) {
	return s.transition(ctx, orderID, entities.EventDeliveryConfirmed, func(ctx context.Context, current *entities.Order, now time.Time) (*entities.Order, *string, error) {
		if !current.IsCourier(actor.ID) {
			return nil, nil, fmt.Errorf("%w: only the assigned courier confirms delivery", entities.ErrForbidden)
		}
		if current.Status.IsTerminal() {
			return nil, nil, fmt.Errorf("%w: order is %s", entities.ErrInvalidTransition, current.Status)
		}
		// проверяется до кода: без подтвержденного забора доставка невозможна даже с верным кодом
		if !current.PickupConfirmed {
			return nil, nil, entities.ErrPickupNotConfirmed
		}
		if current.Status != entities.OrderInTransit {
			return nil, nil, fmt.Errorf("%w: order is %s", entities.ErrInvalidTransition, current.Status)
		}
		if !verification.Verify(code, current.DeliveryCode) {
			return nil, nil, entities.ErrCodeMismatch
		}

		next := current.Clone()
		next.Status = entities.OrderDelivered
		next.DeliveryConfirmed = true
		next.DeliveryTime = &now

		_, err := s.escrow.Release(ctx, current.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("release payment: %w", err)
		}

		_, err = s.matcher.Release(ctx, entities.CourierRelease{
			CourierID:       *current.CourierID,
			Completed:       true,
			DeliveryMinutes: deliveryMinutes(current.PickupTime, now),
		})
		if err != nil {
			return nil, nil, err
		}

		return next, nil, nil
	})
}

// MarkFailed отказ от заказа. Платеж остается held, разбор делается вручную.
func (s *Service) MarkFailed(ctx context.Context, actor entities.Actor, orderID uuid.UUID, reason string) (*entities.Order, error) {
	return s.transition(ctx, orderID, entities.EventOrderFailed, func(ctx context.Context, current *entities.Order, _ time.Time) (*entities.Order, *string, error) {
		if !actor.IsAdmin() && current.SellerID != actor.ID && !current.IsCourier(actor.ID) {
			return nil, nil, fmt.Errorf("%w: only the seller, the courier or an admin can fail an order", entities.ErrForbidden)
		}
		if current.Status != entities.OrderAssigned && current.Status != entities.OrderInTransit {
			return nil, nil, fmt.Errorf("%w: order is %s", entities.ErrInvalidTransition, current.Status)
		}

		next := current.Clone()
		next.Status = entities.OrderFailed
		if reason = strings.TrimSpace(reason); reason != "" {
			next.Notes = strings.TrimSpace(next.Notes + "\nfailed: " + reason)
		}

		_, err := s.matcher.Release(ctx, entities.CourierRelease{CourierID: *current.CourierID})
		if err != nil {
			return nil, nil, err
		}

		return next, nil, nil
	})
}

func (s *Service) transition(ctx context.Context, orderID uuid.UUID, event entities.OrderEvent, apply step) (*entities.Order, error) {
	if orderID == uuid.Nil {
		return nil, ErrInvalidOrderID
	}

	var (
		result *entities.Order
		from   entities.OrderStatus
	)
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			current, err := s.orders.GetByID(ctx, orderID)
			if err != nil {
				return fmt.Errorf("get order: %w", err)
			}

			now := s.clock.Now()
			next, previousCourierID, err := apply(ctx, current, now)
			if err != nil {
				return err
			}
			next.UpdatedAt = now

			saved, err := s.orders.Update(ctx, *next, current.Status)
			if err != nil {
				return fmt.Errorf("update order: %w", err)
			}

			err = s.outbox.Add(ctx, entities.OrderTransition{
				ID:                uuid.New(),
				Event:             event,
				From:              &current.Status,
				To:                saved.Status,
				Order:             *saved,
				PreviousCourierID: previousCourierID,
				OccurredAt:        now,
			})
			if err != nil {
				return fmt.Errorf("add outbox event: %w", err)
			}

			result = saved
			from = current.Status
			return nil
		})
	})
	observeTransition(event, err)
	if err != nil {
		return nil, err
	}

	s.log.Info("order transitioned",
		logger.NewField("order", result.ID.String()),
		logger.NewField("event", event.String()),
		logger.NewField("from", from.String()),
		logger.NewField("to", result.Status.String()),
	)
	return result, nil
}

func deliveryMinutes(pickupTime *time.Time, deliveredAt time.Time) float64 {
	if pickupTime == nil || deliveredAt.Before(*pickupTime) {
		return 0
	}
	return deliveredAt.Sub(*pickupTime).Minutes()
}
