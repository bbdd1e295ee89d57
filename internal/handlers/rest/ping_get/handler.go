package ping_get

import (
	"net/http"

	"fulfillment/internal/dto/rest"
	"fulfillment/internal/handlers/rest/response"
	"fulfillment/pkg/logger"
)

const serviceName = "fulfillment"

type Handler struct {
	log   handlerLogger
	clock Clock
}

func New(log handlerLogger, clock Clock) *Handler {
	return &Handler{
		log:   log.With(logger.NewField("handler", "ping_get")),
		clock: clock,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	response.WriteJSON(w, h.log, http.StatusOK, rest.PingResponse{
		Message:    "pong",
		Service:    serviceName,
		ServerTime: h.clock.Now(),
	})
}
