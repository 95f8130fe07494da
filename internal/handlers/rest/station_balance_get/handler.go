package station_balance_get

import (
	"net/http"

	"samecity/internal/generated/dto"
	"samecity/internal/handlers/rest/response"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	merID, ok := response.PathInt64(r, "mer_id")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	stationID, ok := response.PathInt64(r, "station_id")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	balance, err := h.service.Balance(r.Context(), merID, stationID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.Balance{Amount: balance.Amount.StringFixed(2)})
}
