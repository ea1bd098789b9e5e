package booking_submit_post

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"courier-booking/internal/dto"
	"courier-booking/internal/service/booking"
	"courier-booking/internal/service/dispatch"
	"courier-booking/internal/service/draft"
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
	rideEntity, err := h.service.Submit(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, draft.ErrNotReadyForReview):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, booking.ErrDispatchInProgress),
			errors.Is(err, dispatch.ErrCapacityExceeded),
			errors.Is(err, dispatch.ErrNoCourierAvailable):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, context.Canceled),
			errors.Is(err, context.DeadlineExceeded):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			h.log.Error("submit booking", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromRide(rideEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
