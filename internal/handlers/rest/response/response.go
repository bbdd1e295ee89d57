package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/dto/rest"
	"fulfillment/internal/entities"
	"fulfillment/internal/pkg/identity"
	"fulfillment/internal/service/courier"
	"fulfillment/internal/service/escrow"
	"fulfillment/internal/service/notifier"
	"fulfillment/internal/service/order"
	"fulfillment/internal/service/reputation"
	"fulfillment/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

var badRequestErrors = []error{
	order.ErrInvalidOrderID,
	order.ErrEmptyItems,
	order.ErrInvalidQuantity,
	order.ErrInvalidProductID,
	order.ErrForeignProduct,
	order.ErrMissingSeller,
	order.ErrMissingBuyer,
	order.ErrInvalidCourierID,
	order.ErrInvalidCoordinate,
	order.ErrInvalidStatus,
	courier.ErrMissingRequiredFields,
	courier.ErrInvalidCourierID,
	courier.ErrInvalidName,
	courier.ErrInvalidStatus,
	courier.ErrInvalidPhone,
	courier.ErrInvalidTransport,
	courier.ErrInvalidLocation,
	reputation.ErrInvalidScore,
	reputation.ErrFeedbackTooLong,
	reputation.ErrInvalidRatee,
	reputation.ErrMissingRatingRef,
	notifier.ErrInvalidNotificationID,
	escrow.ErrInvalidTotal,
}

var notFoundErrors = []error{
	entities.ErrOrderNotFound,
	entities.ErrCourierNotFound,
	entities.ErrPaymentNotFound,
	entities.ErrRatingNotFound,
	entities.ErrNotificationNotFound,
	entities.ErrProductNotFound,
	entities.ErrSellerNotFound,
}

var conflictErrors = []error{
	entities.ErrInvalidTransition,
	entities.ErrConcurrentModification,
	entities.ErrCourierUnavailable,
	entities.ErrPickupNotConfirmed,
	entities.ErrDuplicateRating,
	entities.ErrCourierConflict,
	courier.ErrCourierHasActiveOrders,
}

var unprocessableErrors = []error{
	entities.ErrCodeMismatch,
	entities.ErrEditWindowExpired,
	escrow.ErrTotalBelowFees,
	order.ErrInvalidPrice,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// StatusFromError HTTP статус для ошибки сервисного слоя.
func StatusFromError(err error) int {
	switch {
	case isAny(err, badRequestErrors):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrForbidden),
		errors.Is(err, notifier.ErrNotificationNotAssigned):
		return http.StatusForbidden
	case isAny(err, notFoundErrors):
		return http.StatusNotFound
	case isAny(err, conflictErrors):
		return http.StatusConflict
	case isAny(err, unprocessableErrors):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func errorCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusUnprocessableEntity:
		return "unprocessable"
	case http.StatusGatewayTimeout:
		return "timeout"
	default:
		return "internal"
	}
}

func WriteJSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// WriteError для 5xx наружу уходит только код ошибки, детали остаются в логе.
func WriteError(w http.ResponseWriter, log errorLogger, err error) {
	status := StatusFromError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Error("request failed", logger.NewField("error", err))
		message = http.StatusText(status)
	}
	WriteJSON(w, log, status, rest.Error{
		Error:   errorCode(status),
		Message: message,
	})
}

func WriteBadRequest(w http.ResponseWriter, log errorLogger, message string) {
	WriteJSON(w, log, http.StatusBadRequest, rest.Error{
		Error:   errorCode(http.StatusBadRequest),
		Message: message,
	})
}

// Actor достает актора из контекста, при его отсутствии отвечает 401.
func Actor(w http.ResponseWriter, r *http.Request, log errorLogger) (entities.Actor, bool) {
	actor, ok := identity.FromContext(r.Context())
	if !ok {
		WriteJSON(w, log, http.StatusUnauthorized, rest.Error{
			Error:   errorCode(http.StatusUnauthorized),
			Message: "missing identity",
		})
	}
	return actor, ok
}
