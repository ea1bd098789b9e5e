package booking_package_put

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"courier-booking/internal/dto"
	"courier-booking/internal/entities"
	"courier-booking/internal/pkg/validation"
	"courier-booking/internal/service/draft"
	"courier-booking/pkg/logger"
)

// фото посылки в base64
const maxBodyBytes = 8 << 20

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
	var packageDTO dto.PackageRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&packageDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validation.Struct(packageDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var image []byte
	if packageDTO.Image != "" {
		image, err = base64.StdEncoding.DecodeString(packageDTO.Image)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	err = h.service.SetPackage(entities.PackageType(packageDTO.Type), image)
	if err != nil {
		switch {
		case errors.Is(err, draft.ErrUnknownPackageType):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			h.log.Error("set package", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
