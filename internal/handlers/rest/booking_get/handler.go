package booking_get

import (
	"encoding/json"
	"net/http"

	"courier-booking/internal/dto"
	"courier-booking/internal/service/booking"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	summaryDTO := toDTO(h.service.Summary())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(summaryDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDTO(s booking.Summary) dto.Summary {
	res := dto.Summary{
		Step:            s.Draft.Step.String(),
		Pickup:          dto.FromLocation(s.Draft.Pickup),
		Dropoff:         dto.FromLocation(s.Draft.Dropoff),
		PackageType:     s.Draft.PackageType.String(),
		HasPackageImage: len(s.Draft.PackageImage) > 0,
		Contact:         dto.FromContact(s.Draft.Contact),
		DistanceKm:      s.DistanceKm,
		EtaMinutes:      s.EtaMinutes,
		Price:           s.Price,
		Currency:        s.Currency,
		ActiveRides:     s.ActiveRides,
		MaxRides:        s.MaxRides,
		Submitting:      s.Submitting,
		MapCenter:       dto.FromPoint(s.MapCenter),
	}
	if s.Pending != nil {
		pending := dto.FromPending(*s.Pending)
		res.Pending = &pending
	}
	return res
}
