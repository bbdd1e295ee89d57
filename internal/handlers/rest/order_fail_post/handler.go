package order_fail_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

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
		logger.NewField("handler", "order_fail_post"),
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

	// причина необязательна, пустое тело допустимо
	var req rest.FailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.WriteBadRequest(w, h.log, "invalid request body")
		return
	}

	orderEntity, err := h.service.MarkFailed(r.Context(), actor, orderID, req.Reason)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	h.log.Info("order failed",
		logger.NewField("order_id", orderEntity.ID.String()),
		logger.NewField("actor_role", actor.Role.String()),
	)

	response.WriteJSON(w, h.log, http.StatusOK, rest.OrderFromDomain(orderEntity, actor))
}
