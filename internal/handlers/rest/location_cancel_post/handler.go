package location_cancel_post

import "net/http"

type Handler struct {
	service Service
}

func New(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.service.Cancel()
	w.WriteHeader(http.StatusNoContent)
}
