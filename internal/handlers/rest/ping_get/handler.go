package ping_get

import (
	"encoding/json"
	"net/http"

	"courier-booking/internal/dto"
	"courier-booking/pkg/logger"

	"github.com/jonboulle/clockwork"
)

const pong = "pong"

type Handler struct {
	log   handlerLogger
	clock clockwork.Clock
}

func New(log handlerLogger, clock clockwork.Clock) *Handler {
	return &Handler{
		log:   log.With(logger.NewField("handler", "ping_get")),
		clock: clock,
	}
}

// ServeHTTP отвечает pong и временем сервера в UTC, по нему клиент сверяет часы для ETA.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := pong
	res := dto.PingResponse{
		Message:    &message,
		ServerTime: h.clock.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
