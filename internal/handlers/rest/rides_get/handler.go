package rides_get

import (
	"encoding/json"
	"net/http"

	"courier-booking/internal/dto"
	"courier-booking/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tracking := h.service.Tracking()

	res := dto.RidesResponse{
		Rides:       dto.FromTracking(tracking),
		ActiveRides: len(tracking),
		MaxRides:    h.service.Capacity(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
