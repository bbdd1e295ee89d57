package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAssigned  OrderStatus = "assigned"
	OrderInTransit OrderStatus = "in_transit"
	OrderDelivered OrderStatus = "delivered"
	OrderFailed    OrderStatus = "failed"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderAssigned, OrderInTransit, OrderDelivered, OrderFailed:
		return true
	default:
		return false
	}
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderFailed
}

// DefaultBuyerLegEtaMinutes используется когда ETA от продавца до покупателя неизвестно.
const DefaultBuyerLegEtaMinutes = 20

type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID uuid.UUID

	BuyerID     string
	BuyerName   string
	SellerID    string
	SellerName  string
	CourierID   *string
	CourierName *string

	Items []OrderItem
	Total decimal.Decimal

	Status OrderStatus

	PickupCode        string
	DeliveryCode      string
	PickupConfirmed   bool
	DeliveryConfirmed bool
	PickupTime        *time.Time
	DeliveryTime      *time.Time

	SellerLocation  *Location
	BuyerLocation   *Location
	CourierLocation *Location

	EtaToBuyerMinutes *int
	EtaMinutes        *int

	Notes string

	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemsTotal сумма по позициям, считается один раз при создании заказа.
func ItemsTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Party роль актора в конкретном заказе, пустая строка если актор не участник.
func (o *Order) Party(actorID string) Role {
	switch {
	case actorID == "":
		return ""
	case o.BuyerID == actorID:
		return RoleBuyer
	case o.SellerID == actorID:
		return RoleSeller
	case o.CourierID != nil && *o.CourierID == actorID:
		return RoleCourier
	default:
		return ""
	}
}

func (o *Order) IsCourier(actorID string) bool {
	return o.CourierID != nil && *o.CourierID == actorID
}

// CanView участники заказа и админ.
func (o *Order) CanView(actor Actor) bool {
	return actor.IsAdmin() || o.Party(actor.ID) != ""
}

// Clone глубокая копия, переходы состояний работают с копией и не трогают прочитанный снимок.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.Items = append([]OrderItem(nil), o.Items...)
	c.CourierID = clonePtr(o.CourierID)
	c.CourierName = clonePtr(o.CourierName)
	c.PickupTime = clonePtr(o.PickupTime)
	c.DeliveryTime = clonePtr(o.DeliveryTime)
	c.SellerLocation = clonePtr(o.SellerLocation)
	c.BuyerLocation = clonePtr(o.BuyerLocation)
	c.CourierLocation = clonePtr(o.CourierLocation)
	c.EtaToBuyerMinutes = clonePtr(o.EtaToBuyerMinutes)
	c.EtaMinutes = clonePtr(o.EtaMinutes)
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// OrderItemRequest позиция в запросе на создание заказа, цена и название берутся из каталога.
type OrderItemRequest struct {
	ProductID string
	Quantity  int
}

type Checkout struct {
	SellerID      string
	Items         []OrderItemRequest
	BuyerLocation *Location
	Notes         string
}

type DeliveryCreate struct {
	BuyerID       string
	BuyerName     string
	Items         []OrderItemRequest
	BuyerLocation *Location
	CourierID     *string
	Notes         string
}
