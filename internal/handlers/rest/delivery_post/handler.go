package delivery_post

import (
	"encoding/json"
	"net/http"

	"fulfillment/internal/dto/rest"
	"fulfillment/internal/handlers/rest/response"
	"fulfillment/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "delivery_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := response.Actor(w, r, h.log)
	if !ok {
		return
	}

	var req rest.DeliveryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, h.log, "invalid request body")
		return
	}

	orderEntity, err := h.service.CreateDelivery(r.Context(), actor, rest.DeliveryCreateToDomain(req))
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	h.log.Info("delivery created",
		logger.NewField("order_id", orderEntity.ID.String()),
		logger.NewField("status", orderEntity.Status.String()),
	)

	response.WriteJSON(w, h.log, http.StatusCreated, rest.OrderFromDomain(orderEntity, actor))
}
