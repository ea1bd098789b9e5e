package location_confirm_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"courier-booking/internal/dto"
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
	confirmed, err := h.service.Confirm()
	if err != nil {
		switch {
		case errors.Is(err, location.ErrSelectionClosed),
			errors.Is(err, location.ErrNothingToConfirm):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			h.log.Error("confirm location", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromLocation(confirmed))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
