package couriers_get

import (
	"encoding/json"
	"net/http"

	"courier-booking/internal/dto"
	"courier-booking/internal/entities"
	"courier-booking/pkg/logger"
)

const vehicleParam = "vehicle"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "couriers_get")),
		service: service,
	}
}

// ServeHTTP отдает справочник курьеров, ?vehicle=bike|car оставляет только этот транспорт.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var kind entities.VehicleKind
	if raw := r.URL.Query().Get(vehicleParam); raw != "" {
		kind = entities.VehicleKind(raw)
		if !kind.Valid() {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	couriers, err := h.service.GetCouriers(r.Context())
	if err != nil {
		h.log.Error("get couriers", logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if kind != "" {
		couriers = byVehicle(couriers, kind)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto.FromCouriers(couriers)); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func byVehicle(couriers []entities.Courier, kind entities.VehicleKind) []entities.Courier {
	filtered := make([]entities.Courier, 0, len(couriers))
	for _, c := range couriers {
		if c.VehicleKind == kind {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
