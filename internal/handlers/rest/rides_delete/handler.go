package rides_delete

import (
	"encoding/json"
	"net/http"
	"strconv"

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

// ServeHTTP отменяет все поездки и сбрасывает бронирование, требует ?confirm=true.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm")); !confirmed {
		w.WriteHeader(http.StatusPreconditionRequired)
		return
	}

	cancelled := h.service.ResetAll(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(dto.CancelledRidesResponse{Cancelled: dto.FromRides(cancelled)})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
