package order

import (
	"errors"

	"fulfillment/internal/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_transitions_total",
		Help: "Order state machine transitions by event and result",
	},
	[]string{"event", "result"},
)

func observeTransition(event entities.OrderEvent, err error) {
	transitionsTotal.WithLabelValues(event.String(), transitionResult(err)).Inc()
}

func transitionResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, entities.ErrConcurrentModification):
		return "conflict"
	case errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrPickupNotConfirmed),
		errors.Is(err, entities.ErrCodeMismatch),
		errors.Is(err, entities.ErrCourierUnavailable),
		errors.Is(err, entities.ErrForbidden):
		return "rejected"
	default:
		return "error"
	}
}
