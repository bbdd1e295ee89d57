package order

import (
	"strings"

	"fulfillment/internal/entities"
)

func validateItems(items []entities.OrderItemRequest) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	for _, item := range items {
		if strings.TrimSpace(item.ProductID) == "" {
			return ErrInvalidProductID
		}
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

func isValidLocation(loc *entities.Location) bool {
	if loc == nil {
		return true
	}
	return loc.Lat >= -90 && loc.Lat <= 90 && loc.Lon >= -180 && loc.Lon <= 180
}

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}
