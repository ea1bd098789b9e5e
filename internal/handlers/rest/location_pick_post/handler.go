package location_pick_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"courier-booking/internal/dto"
	"courier-booking/internal/pkg/validation"
	"courier-booking/internal/service/location"
	"courier-booking/pkg/geo"
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

// ServeHTTP принимает клик по карте. Адрес определяется в фоне, ответ содержит
// координаты в качестве временного адреса.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var pickDTO dto.LocationPickRequest
	if err := json.NewDecoder(r.Body).Decode(&pickDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validation.Struct(pickDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	pending, err := h.service.SetFromCoordinates(geo.Point{Lat: *pickDTO.Lat, Lng: *pickDTO.Lng})
	if err != nil {
		switch {
		case errors.Is(err, location.ErrInvalidCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, location.ErrSelectionClosed):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			h.log.Error("pick location", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromPending(pending))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
