package order

import (
	"time"

	"github.com/google/uuid"
)

type OrderDB struct {
	ID                uuid.UUID
	BuyerID           string
	BuyerName         string
	SellerID          string
	SellerName        string
	CourierID         *string
	CourierName       *string
	Total             string
	Status            string
	PickupCode        string
	DeliveryCode      string
	PickupConfirmed   bool
	DeliveryConfirmed bool
	PickupTime        *time.Time
	DeliveryTime      *time.Time
	SellerLat         *float64
	SellerLon         *float64
	BuyerLat          *float64
	BuyerLon          *float64
	CourierLat        *float64
	CourierLon        *float64
	EtaToBuyerMinutes *int
	EtaMinutes        *int
	Notes             string
	Version           int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type OrderItemDB struct {
	OrderID     uuid.UUID
	Position    int
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   string
}
