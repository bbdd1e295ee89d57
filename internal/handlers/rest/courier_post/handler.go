package courier_post

import (
	"encoding/json"
	"fmt"
	"net/http"

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
	handlerLog := log.With(
		logger.NewField("handler", "courier_post"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP регистрировать курьеров может только админ.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := response.Actor(w, r, h.log)
	if !ok {
		return
	}
	if !actor.IsAdmin() {
		response.WriteError(w, h.log, fmt.Errorf("%w: only admin can register couriers", entities.ErrForbidden))
		return
	}

	var req rest.CourierModifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, h.log, "invalid request body")
		return
	}

	courierEntity, err := h.service.CreateCourier(r.Context(), rest.CourierModifyToDomain(req))
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	h.log.Info("courier registered", logger.NewField("courier_id", courierEntity.ID))

	response.WriteJSON(w, h.log, http.StatusCreated, rest.CourierFromDomain(courierEntity))
}
