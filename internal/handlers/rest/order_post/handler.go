package order_post

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
		logger.NewField("handler", "order_post"),
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

	var req rest.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, h.log, "invalid request body")
		return
	}

	orderEntity, err := h.service.Checkout(r.Context(), actor, rest.CheckoutToDomain(req))
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	h.log.Info("order created",
		logger.NewField("order_id", orderEntity.ID.String()),
		logger.NewField("seller_id", orderEntity.SellerID),
	)

	response.WriteJSON(w, h.log, http.StatusCreated, rest.OrderFromDomain(orderEntity, actor))
}
