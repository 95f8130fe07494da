package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"samecity/internal/entities"
	"samecity/internal/generated/dto"
	"samecity/internal/geo"
	"samecity/internal/service/delivery"
	"samecity/internal/service/fee"
	"samecity/pkg/logger"
)

type errorLogger interface {
	With(fields ...logger.Field) logger.Logger
}

// Status maps an error kind onto an HTTP status code.
func Status(err error) int {
	var providerErr *entities.ProviderError

	switch {
	case errors.Is(err, entities.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, delivery.ErrAlreadyCancelled),
		errors.Is(err, delivery.ErrAlreadyCompleted),
		errors.Is(err, delivery.ErrAlreadyConfirmed),
		errors.Is(err, delivery.ErrDeliveryOrderExists),
		errors.Is(err, delivery.ErrDeliveryOrderActive):
		return http.StatusConflict
	case errors.Is(err, fee.ErrBelowMinimumOrder),
		errors.Is(err, fee.ErrOutOfDeliveryRange),
		errors.Is(err, fee.ErrAddressNotFound),
		errors.Is(err, geo.ErrGeocode):
		return http.StatusUnprocessableEntity
	case errors.Is(err, entities.ErrValidation):
		return http.StatusBadRequest
	case errors.As(err, &providerErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error writes the status for err. Client errors carry the message in the
// body, server errors are logged and answered without details.
func Error(w http.ResponseWriter, log errorLogger, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		log.With(
			logger.NewField("error", err),
		).Error("request failed")
		w.WriteHeader(status)
		return
	}

	message := err.Error()
	if errors.Is(err, geo.ErrGeocode) {
		message = geo.ErrGeocode.Error()
	}
	JSON(w, log, status, dto.Error{Message: message})
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// PathInt64 reads a positive integer mux variable.
func PathInt64(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
