package stations_get

import (
	"net/http"

	"samecity/internal/generated/dto"
	"samecity/internal/handlers/rest/converters"
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

	stations, err := h.service.ListStations(r.Context(), merID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	stationsDTO := make([]dto.Station, 0, len(stations))
	for _, station := range stations {
		stationDTO, err := converters.StationToDTO(station)
		if err != nil {
			response.Error(w, h.log, err)
			return
		}
		stationsDTO = append(stationsDTO, stationDTO)
	}

	response.JSON(w, h.log, http.StatusOK, stationsDTO)
}
