package notification_template

import (
	"fmt"
	"strings"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/notifier"
)

const shortIDLength = 8

type TemplateFactory struct{}

func New() *TemplateFactory {
	return &TemplateFactory{}
}

func (f *TemplateFactory) GetTemplate(event entities.OrderEvent) (notifier.TemplateFn, error) {
	switch event {
	case entities.EventOrderCreated:
		return f.createdTemplate, nil
	case entities.EventCourierAssigned:
		return f.assignedTemplate, nil
	case entities.EventPickupConfirmed:
		return f.inTransitTemplate, nil
	case entities.EventDeliveryConfirmed:
		return f.deliveredTemplate, nil
	case entities.EventOrderFailed:
		return f.failedTemplate, nil
	default:
		return nil, fmt.Errorf("%w: %s", notifier.ErrUndefinedEvent, event)
	}
}

func (f *TemplateFactory) createdTemplate(t entities.OrderTransition, r entities.Recipient) string {
	o := t.Order
	switch r.Role {
	case entities.RoleSeller:
		return fmt.Sprintf("New order %s from %s: %s, total %s",
			shortID(o), o.BuyerName, productNames(o.Items), o.Total.StringFixed(2))
	case entities.RoleCourier:
		return fmt.Sprintf("New delivery assigned: pickup from %s, deliver to %s", o.SellerName, o.BuyerName)
	default:
		return fmt.Sprintf("Order %s placed with %s, total %s", shortID(o), o.SellerName, o.Total.StringFixed(2))
	}
}

func (f *TemplateFactory) assignedTemplate(t entities.OrderTransition, r entities.Recipient) string {
	o := t.Order
	if r.Role == entities.RoleCourier {
		if o.IsCourier(r.ID) {
			return fmt.Sprintf("New delivery assigned: pickup from %s, deliver to %s", o.SellerName, o.BuyerName)
		}
		return fmt.Sprintf("Order %s was reassigned to another courier", shortID(o))
	}

	msg := fmt.Sprintf("Your order %s is being prepared", shortID(o))
	if o.CourierName != nil {
		msg += fmt.Sprintf(", courier %s", *o.CourierName)
	}
	if o.EtaMinutes != nil {
		msg += fmt.Sprintf(", ETA %d min", *o.EtaMinutes)
	}
	return msg
}

func (f *TemplateFactory) inTransitTemplate(t entities.OrderTransition, _ entities.Recipient) string {
	return fmt.Sprintf("Your courier is on the way with order %s", shortID(t.Order))
}

func (f *TemplateFactory) deliveredTemplate(t entities.OrderTransition, r entities.Recipient) string {
	o := t.Order
	if r.Role == entities.RoleSeller {
		return fmt.Sprintf("Order %s delivered to %s, payment released", shortID(o), o.BuyerName)
	}
	return fmt.Sprintf("Your order %s has been delivered", shortID(o))
}

func (f *TemplateFactory) failedTemplate(t entities.OrderTransition, r entities.Recipient) string {
	o := t.Order
	if r.Role == entities.RoleSeller {
		return fmt.Sprintf("Delivery of order %s failed, payment is on hold", shortID(o))
	}
	return fmt.Sprintf("Delivery of order %s failed, please contact support", shortID(o))
}

func shortID(o entities.Order) string {
	id := o.ID.String()
	if len(id) > shortIDLength {
		return id[:shortIDLength]
	}
	return id
}

func productNames(items []entities.OrderItem) string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.ProductName)
	}
	return strings.Join(names, ", ")
}
