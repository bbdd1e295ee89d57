package order_assign_post

import (
	"encoding/json"
	"net/http"
	"strings"

	"fulfillment/internal/dto/rest"
	"fulfillment/internal/handlers/rest/response"
	"fulfillment/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "order_assign_post"),
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

	orderID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.WriteBadRequest(w, h.log, "invalid order id")
		return
	}

	var req rest.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, h.log, "invalid request body")
		return
	}
	courierID := strings.TrimSpace(req.CourierID)
	if courierID == "" {
		response.WriteBadRequest(w, h.log, "courier_id is required")
		return
	}

	orderEntity, err := h.service.AssignCourier(r.Context(), actor, orderID, courierID)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	h.log.Info("courier assigned",
		logger.NewField("order_id", orderEntity.ID.String()),
		logger.NewField("courier_id", courierID),
	)

	response.WriteJSON(w, h.log, http.StatusOK, rest.OrderFromDomain(orderEntity, actor))
}
