package couriers_get

import (
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
	return &Handler{
		log:     log.With(logger.NewField("handler", "couriers_get")),
		service: service,
	}
}

// ServeHTTP GET /couriers[?status=available|busy|offline]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var status *entities.CourierStatusType
	if raw := r.URL.Query().Get("status"); raw != "" {
		value := entities.CourierStatusType(raw)
		status = &value
	}

	roster, err := h.service.GetCouriers(r.Context(), status)
	if err != nil {
		response.WriteError(w, h.log, err)
		return
	}

	response.WriteJSON(w, h.log, http.StatusOK, rest.CouriersFromDomain(roster))
}
