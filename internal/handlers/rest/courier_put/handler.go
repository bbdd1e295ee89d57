package courier_put

import (
	"encoding/json"
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
	handlerLog := log.With(logger.NewField("handler", "courier_put"))

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

	var req rest.CourierModifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, h.log, "invalid request body")
		return
	}

	// id из пути главнее id в теле
	courierModify := rest.CourierModifyToDomain(req)
	id := mux.Vars(r)["id"]
	courierModify.ID = &id

	courierEntity, err := h.service.UpdateCourier(r.Context(), actor, courierModify)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, rest.CourierFromDomain(courierEntity))
}
