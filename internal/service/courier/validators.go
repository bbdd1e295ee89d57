package courier

import (
	"strings"

	"fulfillment/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") || len(phone) < 2 {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isKnownStatus(status entities.CourierStatusType) bool {
	return status == entities.CourierBusy || isValidStatus(status)
}

// isValidStatus busy выставляет только движок заказов при назначении.
func isValidStatus(status entities.CourierStatusType) bool {
	switch status {
	case entities.CourierAvailable, entities.CourierOffline:
		return true
	default:
		return false
	}
}

func isValidTransport(transport entities.CourierTransportType) bool {
	switch transport {
	case entities.OnFoot, entities.Scooter, entities.Car:
		return true
	default:
		return false
	}
}

func isValidLocation(loc *entities.Location) bool {
	if loc == nil {
		return true
	}
	return loc.Lat >= -90 && loc.Lat <= 90 && loc.Lon >= -180 && loc.Lon <= 180
}

func validateModify(m entities.CourierModify) error {
	if m.Name != nil && !isValidName(*m.Name) {
		return ErrInvalidName
	}
	if m.Phone != nil && !isValidPhone(*m.Phone) {
		return ErrInvalidPhone
	}
	if m.Status != nil && !isValidStatus(*m.Status) {
		return ErrInvalidStatus
	}
	if m.TransportType != nil && !isValidTransport(*m.TransportType) {
		return ErrInvalidTransport
	}
	if !isValidLocation(m.Location) {
		return ErrInvalidLocation
	}
	return nil
}
