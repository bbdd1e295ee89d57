package courier_get

import (
	"net/http"

	"fulfillment/internal/dto/rest"
	"fulfillment/internal/handlers/rest/response"
	"fulfillment/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "courier_get"))

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	courierEntity, err := h.service.GetCourier(r.Context(), id)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, rest.CourierFromDomain(courierEntity))
}
