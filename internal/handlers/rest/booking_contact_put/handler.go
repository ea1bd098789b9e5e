package booking_contact_put

import (
	"encoding/json"
	"net/http"

	"courier-booking/internal/dto"
	"courier-booking/internal/pkg/validation"
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
	var contactDTO dto.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&contactDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validation.Struct(contactDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	h.service.SetContact(contactDTO.ToDomain())
	w.WriteHeader(http.StatusNoContent)
}
