package ride_delete

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"courier-booking/internal/dto"
	"courier-booking/internal/service/booking"
	"courier-booking/pkg/logger"

	"github.com/gorilla/mux"
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

// ServeHTTP отменяет поездку только с ?confirm=true, иначе 428.
// Отсутствующая поездка отменяется без эффекта: 204 без тела.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	cancelled, found, err := h.service.CancelRide(r.Context(), id, confirmed)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrConfirmationRequired):
			w.WriteHeader(http.StatusPreconditionRequired)
		default:
			h.log.Error("cancel ride", logger.NewField("ride_id", id), logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromRide(cancelled))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
