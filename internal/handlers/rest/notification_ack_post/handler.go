package notification_ack_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"courier-booking/internal/dto"
	"courier-booking/internal/pkg/validation"
	"courier-booking/internal/service/notification"
)

type Handler struct {
	service Service
}

func New(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var ackDTO dto.NotificationAckRequest
	if err := json.NewDecoder(r.Body).Decode(&ackDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validation.Struct(ackDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.service.Acknowledge(ackDTO.ID); err != nil {
		switch {
		case errors.Is(err, notification.ErrNotificationNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
