package location_open_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"courier-booking/internal/dto"
	"courier-booking/internal/entities"
	"courier-booking/internal/pkg/validation"
	"courier-booking/internal/service/location"
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
	var openDTO dto.LocationOpenRequest
	if err := json.NewDecoder(r.Body).Decode(&openDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validation.Struct(openDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	pending, err := h.service.Open(entities.LocationTarget(openDTO.Target))
	if err != nil {
		switch {
		case errors.Is(err, location.ErrUnknownTarget):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.Error("open location selection", logger.NewField("error", err))
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
