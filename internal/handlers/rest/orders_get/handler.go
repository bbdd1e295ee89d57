package orders_get

import (
	"net/http"
	"strconv"

	"fulfillment/internal/dto/rest"
	"fulfillment/internal/entities"
	"fulfillment/internal/handlers/rest/response"
	"fulfillment/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "orders_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP GET /orders?status=pending&limit=20
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := response.Actor(w, r, h.log)
	if !ok {
		return
	}

	query := r.URL.Query()

	var status *entities.OrderStatus
	if raw := query.Get("status"); raw != "" {
		parsed := entities.OrderStatus(raw)
		status = &parsed
	}

	var limit uint64
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.WriteBadRequest(w, h.log, "invalid limit")
			return
		}
		limit = parsed
	}

	orders, err := h.service.List(r.Context(), actor, status, limit)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, rest.OrdersFromDomain(orders, actor))
}
