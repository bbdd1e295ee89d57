package entities

import "errors"

// Доменные ошибки движка заказов, проверяются через errors.Is на всех слоях.
var (
	ErrInvalidTransition      = errors.New("invalid transition")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrCourierUnavailable     = errors.New("courier unavailable")
	ErrPickupNotConfirmed     = errors.New("pickup not confirmed")
	ErrCodeMismatch           = errors.New("code mismatch")
	ErrDuplicateRating        = errors.New("duplicate rating")
	ErrEditWindowExpired      = errors.New("edit window expired")

	ErrForbidden = errors.New("forbidden")

	ErrOrderNotFound        = errors.New("order not found")
	ErrCourierNotFound      = errors.New("courier not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrRatingNotFound       = errors.New("rating not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrSellerNotFound       = errors.New("seller not found")

	ErrCourierConflict = errors.New("courier already exists")
)
