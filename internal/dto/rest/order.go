package rest

import (
	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
)

type (
	OrderItemRequest      = dto.OrderItemRequest
	CheckoutRequest       = dto.CheckoutRequest
	DeliveryCreateRequest = dto.DeliveryCreateRequest
	AssignRequest         = dto.AssignRequest
	CodeRequest           = dto.CodeRequest
	FailRequest           = dto.FailRequest
	OrderItem             = dto.OrderItem
	Order                 = dto.Order
	Candidate             = dto.Candidate
)

func CheckoutToDomain(r CheckoutRequest) entities.Checkout {
	return entities.Checkout{
		SellerID:      r.SellerID,
		Items:         itemsToDomain(r.Items),
		BuyerLocation: LocationToDomain(r.BuyerLocation),
		Notes:         r.Notes,
	}
}

func DeliveryCreateToDomain(r DeliveryCreateRequest) entities.DeliveryCreate {
	return entities.DeliveryCreate{
		BuyerID:       r.BuyerID,
		BuyerName:     r.BuyerName,
		Items:         itemsToDomain(r.Items),
		BuyerLocation: LocationToDomain(r.BuyerLocation),
		CourierID:     r.CourierID,
		Notes:         r.Notes,
	}
}

func itemsToDomain(items []OrderItemRequest) []entities.OrderItemRequest {
	result := make([]entities.OrderItemRequest, 0, len(items))
	for _, item := range items {
		result = append(result, entities.OrderItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return result
}

// OrderFromDomain код самовывоза видит продавец, код вручения покупатель,
// курьер получает их от сторон при передаче. Админ видит оба.
func OrderFromDomain(o *entities.Order, viewer entities.Actor) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	result := Order{
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
		SellerLocation:    LocationFromDomain(o.SellerLocation),
		BuyerLocation:     LocationFromDomain(o.BuyerLocation),
		CourierLocation:   LocationFromDomain(o.CourierLocation),
		EtaToBuyerMinutes: o.EtaToBuyerMinutes,
		EtaMinutes:        o.EtaMinutes,
		Notes:             o.Notes,
		Version:           o.Version,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}

	switch {
	case viewer.IsAdmin():
		result.PickupCode = o.PickupCode
		result.DeliveryCode = o.DeliveryCode
	case viewer.ID == o.SellerID:
		result.PickupCode = o.PickupCode
	case viewer.ID == o.BuyerID:
		result.DeliveryCode = o.DeliveryCode
	}

	return result
}

func OrdersFromDomain(orders []entities.Order, viewer entities.Actor) []Order {
	result := make([]Order, 0, len(orders))
	for i := range orders {
		result = append(result, OrderFromDomain(&orders[i], viewer))
	}
	return result
}

func CandidatesFromDomain(candidates []entities.Candidate) []Candidate {
	result := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, Candidate{
			Courier:    CourierFromDomain(&c.Courier),
			DistanceKm: c.DistanceKm,
		})
	}
	return result
}
