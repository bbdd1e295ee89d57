package notifier

import "fulfillment/internal/entities"

// Recipients участники, которых нужно уведомить о переходе. Покупатель получает
// все изменения статуса, продавец создание и завершение, курьер назначение.
// Курьер, снятый с заказа, тоже получает уведомление.
func Recipients(transition entities.OrderTransition) []entities.Recipient {
	order := transition.Order
	buyer := entities.Recipient{ID: order.BuyerID, Role: entities.RoleBuyer}
	seller := entities.Recipient{ID: order.SellerID, Role: entities.RoleSeller}

	var recipients []entities.Recipient
	switch transition.Event {
	case entities.EventOrderCreated:
		recipients = []entities.Recipient{buyer, seller}
		if order.CourierID != nil {
			recipients = append(recipients, entities.Recipient{ID: *order.CourierID, Role: entities.RoleCourier})
		}
	case entities.EventCourierAssigned:
		recipients = []entities.Recipient{buyer}
		if order.CourierID != nil {
			recipients = append(recipients, entities.Recipient{ID: *order.CourierID, Role: entities.RoleCourier})
		}
		if transition.PreviousCourierID != nil {
			recipients = append(recipients, entities.Recipient{ID: *transition.PreviousCourierID, Role: entities.RoleCourier})
		}
	case entities.EventPickupConfirmed:
		recipients = []entities.Recipient{buyer}
	case entities.EventDeliveryConfirmed, entities.EventOrderFailed:
		recipients = []entities.Recipient{buyer, seller}
	}

	return dedupe(recipients)
}

func dedupe(recipients []entities.Recipient) []entities.Recipient {
	seen := make(map[entities.Recipient]struct{}, len(recipients))
	out := recipients[:0]
	for _, r := range recipients {
		if r.ID == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
