package booking_reset_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"courier-booking/internal/dto"
	"courier-booking/internal/service/booking"
)

type Handler struct {
	service Service
}

func New(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// ServeHTTP без тела запроса сбрасывает черновик; keep_package повторяет последний заказ.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var resetDTO dto.ResetRequest
	err := json.NewDecoder(r.Body).Decode(&resetDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if !resetDTO.KeepPackage {
		h.service.ResetDraft()
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.service.RepeatLastBooking(); err != nil {
		switch {
		case errors.Is(err, booking.ErrNoPreviousBooking):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
