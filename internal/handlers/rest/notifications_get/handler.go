package notifications_get

import (
	"net/http"
	"strconv"

	"fulfillment/internal/dto/rest"
	"fulfillment/internal/handlers/rest/response"
	"fulfillment/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "notifications_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP GET /notifications?unread=true&limit=20
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := response.Actor(w, r, h.log)
	if !ok {
		return
	}

	query := r.URL.Query()

	var unreadOnly bool
	if raw := query.Get("unread"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.WriteBadRequest(w, h.log, "invalid unread flag")
			return
		}
		unreadOnly = parsed
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

	notifications, err := h.service.List(r.Context(), actor, unreadOnly, limit)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, rest.NotificationsFromDomain(notifications))
}
