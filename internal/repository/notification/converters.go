package notification

import "fulfillment/internal/entities"

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}
	return &entities.Notification{
		ID:            n.ID,
		RecipientID:   n.RecipientID,
		RecipientRole: entities.Role(n.RecipientRole),
		OrderID:       n.OrderID,
		Event:         entities.OrderEvent(n.Event),
		Message:       n.Message,
		Read:          n.Read,
		CreatedAt:     n.CreatedAt,
	}
}

func FromDomain(n *entities.Notification) *NotificationDB {
	if n == nil {
		return nil
	}
	return &NotificationDB{
		ID:            n.ID,
		RecipientID:   n.RecipientID,
		RecipientRole: n.RecipientRole.String(),
		OrderID:       n.OrderID,
		Event:         n.Event.String(),
		Message:       n.Message,
		Read:          n.Read,
		CreatedAt:     n.CreatedAt,
	}
}

func ToDomainList(models []NotificationDB) []entities.Notification {
	result := make([]entities.Notification, len(models))
	for i, m := range models {
		result[i] = *ToDomain(&m)
	}
	return result
}
