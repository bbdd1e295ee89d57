package order

import (
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/repository"
)

func ToDomain(o *OrderDB, items []OrderItemDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	total, err := repository.MoneyFromDB(o.Total)
	if err != nil {
		return nil, fmt.Errorf("order %s total: %w", o.ID, err)
	}

	domainItems := make([]entities.OrderItem, 0, len(items))
	for _, item := range items {
		unitPrice, err := repository.MoneyFromDB(item.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("order %s item %d: %w", o.ID, item.Position, err)
		}
		domainItems = append(domainItems, entities.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
		})
	}

	return &entities.Order{
		ID:                o.ID,
		BuyerID:           o.BuyerID,
		BuyerName:         o.BuyerName,
		SellerID:          o.SellerID,
		SellerName:        o.SellerName,
		CourierID:         o.CourierID,
		CourierName:       o.CourierName,
		Items:             domainItems,
		Total:             total,
		Status:            entities.OrderStatus(o.Status),
		PickupCode:        o.PickupCode,
		DeliveryCode:      o.DeliveryCode,
		PickupConfirmed:   o.PickupConfirmed,
		DeliveryConfirmed: o.DeliveryConfirmed,
		PickupTime:        o.PickupTime,
		DeliveryTime:      o.DeliveryTime,
		SellerLocation:    repository.LocationFromDB(o.SellerLat, o.SellerLon),
		BuyerLocation:     repository.LocationFromDB(o.BuyerLat, o.BuyerLon),
		CourierLocation:   repository.LocationFromDB(o.CourierLat, o.CourierLon),
		EtaToBuyerMinutes: o.EtaToBuyerMinutes,
		EtaMinutes:        o.EtaMinutes,
		Notes:             o.Notes,
		Version:           o.Version,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}, nil
}

func FromDomain(o *entities.Order) (*OrderDB, []OrderItemDB) {
	if o == nil {
		return nil, nil
	}

	orderDB := &OrderDB{
		ID:                o.ID,
		BuyerID:           o.BuyerID,
		BuyerName:         o.BuyerName,
		SellerID:          o.SellerID,
		SellerName:        o.SellerName,
		CourierID:         o.CourierID,
		CourierName:       o.CourierName,
		Total:             repository.MoneyToDB(o.Total),
		Status:            o.Status.String(),
		PickupCode:        o.PickupCode,
		DeliveryCode:      o.DeliveryCode,
		PickupConfirmed:   o.PickupConfirmed,
		DeliveryConfirmed: o.DeliveryConfirmed,
		PickupTime:        o.PickupTime,
		DeliveryTime:      o.DeliveryTime,
		EtaToBuyerMinutes: o.EtaToBuyerMinutes,
		EtaMinutes:        o.EtaMinutes,
		Notes:             o.Notes,
		Version:           o.Version,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
	orderDB.SellerLat, orderDB.SellerLon = repository.LocationToDB(o.SellerLocation)
	orderDB.BuyerLat, orderDB.BuyerLon = repository.LocationToDB(o.BuyerLocation)
	orderDB.CourierLat, orderDB.CourierLon = repository.LocationToDB(o.CourierLocation)

	items := make([]OrderItemDB, 0, len(o.Items))
	for i, item := range o.Items {
		items = append(items, OrderItemDB{
			OrderID:     o.ID,
			Position:    i,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   repository.MoneyToDB(item.UnitPrice),
		})
	}

	return orderDB, items
}
