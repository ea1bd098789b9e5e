package booking_step_post

import (
	"encoding/json"
	"net/http"

	"courier-booking/internal/dto"
	"courier-booking/internal/entities"
	"courier-booking/internal/pkg/validation"
	"courier-booking/pkg/logger"
)

const (
	directionNext = "next"
	directionBack = "back"
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

// ServeHTTP отвечает 422, если шаг не сменился: условия текущего шага не выполнены
// или назад идти некуда.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var stepDTO dto.StepRequest
	if err := json.NewDecoder(r.Body).Decode(&stepDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validation.Struct(stepDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var (
		step  entities.BookingStep
		moved bool
	)
	switch stepDTO.Direction {
	case directionNext:
		step, moved = h.service.Advance()
	case directionBack:
		step, moved = h.service.Back()
	}

	status := http.StatusOK
	if !moved {
		status = http.StatusUnprocessableEntity
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(dto.StepResponse{Step: step.String(), Moved: moved})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
