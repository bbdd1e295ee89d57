package notification_read_post

import (
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
	handlerLog := log.With(logger.NewField("handler", "notification_read_post"))

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

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.WriteBadRequest(w, h.log, "invalid notification id")
		return
	}

	notification, err := h.service.MarkRead(r.Context(), actor, id)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, rest.NotificationFromDomain(notification))
}
