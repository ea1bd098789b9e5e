package location_search_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"courier-booking/internal/dto"
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

// ServeHTTP запускает поиск в фоне и отвечает 202; слишком короткий запрос игнорируется с 200.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var searchDTO dto.LocationSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&searchDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validation.Struct(searchDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	started, err := h.service.SearchByText(searchDTO.Query)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrSelectionClosed):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			h.log.Error("search location", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	status := http.StatusOK
	if started {
		status = http.StatusAccepted
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err = json.NewEncoder(w).Encode(dto.SearchResponse{Started: started})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
