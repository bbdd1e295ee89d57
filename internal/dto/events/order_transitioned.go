package events

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderTransitioned событие топика переходов заказов. Ключ сообщения id заказа.
type OrderTransitioned struct {
	ID                uuid.UUID  `json:"id"`
	Event             string     `json:"event"`
	From              *string    `json:"from,omitempty"`
	To                string     `json:"to"`
	PreviousCourierID *string    `json:"previous_courier_id,omitempty"`
	OccurredAt        time.Time  `json:"occurred_at"`
	Order             OrderState `json:"order"`
}

// OrderState снимок заказа после перехода. Коды подтверждения в событие не попадают.
type OrderState struct {
	ID                uuid.UUID       `json:"id"`
	BuyerID           string          `json:"buyer_id"`
	BuyerName         string          `json:"buyer_name"`
	SellerID          string          `json:"seller_id"`
	SellerName        string          `json:"seller_name"`
	CourierID         *string         `json:"courier_id,omitempty"`
	CourierName       *string         `json:"courier_name,omitempty"`
	Items             []OrderItem     `json:"items"`
	Total             decimal.Decimal `json:"total"`
	Status            string          `json:"status"`
	PickupConfirmed   bool            `json:"pickup_confirmed"`
	DeliveryConfirmed bool            `json:"delivery_confirmed"`
	PickupTime        *time.Time      `json:"pickup_time,omitempty"`
	DeliveryTime      *time.Time      `json:"delivery_time,omitempty"`
	EtaMinutes        *int            `json:"eta_minutes,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	Version           int64           `json:"version"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func FromDomain(t entities.OrderTransition) OrderTransitioned {
	var from *string
	if t.From != nil {
		s := t.From.String()
		from = &s
	}

	items := make([]OrderItem, 0, len(t.Order.Items))
	for _, item := range t.Order.Items {
		items = append(items, OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	o := t.Order
	return OrderTransitioned{
		ID:                t.ID,
		Event:             t.Event.String(),
		From:              from,
		To:                t.To.String(),
		PreviousCourierID: t.PreviousCourierID,
		OccurredAt:        t.OccurredAt,
		Order: OrderState{
			ID:                o.ID,
			BuyerID:           o.BuyerID,
			BuyerName:         o.BuyerName,
			SellerID:          o.SellerID,
			SellerName:        o.SellerName,
			CourierID:         o.CourierID,
			CourierName:       o.CourierName,
			Items:             items,
			Total:             o.Total,
			Status:            o.Status.String(),
			PickupConfirmed:   o.PickupConfirmed,
			DeliveryConfirmed: o.DeliveryConfirmed,
			PickupTime:        o.PickupTime,
			DeliveryTime:      o.DeliveryTime,
			EtaMinutes:        o.EtaMinutes,
			Notes:             o.Notes,
			Version:           o.Version,
			CreatedAt:         o.CreatedAt,
			UpdatedAt:         o.UpdatedAt,
		},
	}
}

func (e OrderTransitioned) ToDomain() (entities.OrderTransition, error) {
	if e.ID == uuid.Nil || e.Order.ID == uuid.Nil {
		return entities.OrderTransition{}, errors.New("event without id")
	}
	if e.Event == "" || e.To == "" {
		return entities.OrderTransition{}, fmt.Errorf("event %s without kind or target status", e.ID)
	}

	var from *entities.OrderStatus
	if e.From != nil {
		status := entities.OrderStatus(*e.From)
		from = &status
	}

	items := make([]entities.OrderItem, 0, len(e.Order.Items))
	for _, item := range e.Order.Items {
		items = append(items, entities.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	o := e.Order
	return entities.OrderTransition{
		ID:                e.ID,
		Event:             entities.OrderEvent(e.Event),
		From:              from,
		To:                entities.OrderStatus(e.To),
		PreviousCourierID: e.PreviousCourierID,
		OccurredAt:        e.OccurredAt,
		Order: entities.Order{
			ID:                o.ID,
			BuyerID:           o.BuyerID,
			BuyerName:         o.BuyerName,
			SellerID:          o.SellerID,
			SellerName:        o.SellerName,
			CourierID:         o.CourierID,
			CourierName:       o.CourierName,
			Items:             items,
			Total:             o.Total,
			Status:            entities.OrderStatus(o.Status),
			PickupConfirmed:   o.PickupConfirmed,
			DeliveryConfirmed: o.DeliveryConfirmed,
			PickupTime:        o.PickupTime,
			DeliveryTime:      o.DeliveryTime,
			EtaMinutes:        o.EtaMinutes,
			Notes:             o.Notes,
			Version:           o.Version,
			CreatedAt:         o.CreatedAt,
			UpdatedAt:         o.UpdatedAt,
		},
	}, nil
}
