package rest

import (
	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
)

type Notification = dto.Notification

func NotificationFromDomain(n *entities.Notification) Notification {
	return Notification{
		ID:        n.ID,
		OrderID:   n.OrderID,
		Event:     n.Event.String(),
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func NotificationsFromDomain(notifications []entities.Notification) []Notification {
	result := make([]Notification, 0, len(notifications))
	for i := range notifications {
		result = append(result, NotificationFromDomain(&notifications[i]))
	}
	return result
}
