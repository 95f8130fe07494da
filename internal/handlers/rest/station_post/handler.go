package station_post

import (
	"encoding/json"
	"net/http"

	"samecity/internal/entities"
	"samecity/internal/generated/dto"
	"samecity/internal/geo"
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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	merID, ok := response.PathInt64(r, "mer_id")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var stationDTO dto.StationCreate
	if err := json.NewDecoder(r.Body).Decode(&stationDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	modify, err := toModify(merID, stationDTO)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	id, err := h.service.CreateStation(r.Context(), modify)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, dto.StationCreateResponse{Id: id})
}

func toModify(merID int64, s dto.StationCreate) (entities.DeliveryStationModify, error) {
	location, err := converters.PointFromDTO(s.Location)
	if err != nil {
		return entities.DeliveryStationModify{}, err
	}

	stationType := entities.StationType(s.Type)
	scopeType := entities.ScopeType(s.ScopeType)

	modify := entities.DeliveryStationModify{
		MerID:         &merID,
		Name:          &s.Name,
		Phone:         s.Phone,
		Location:      &location,
		Address:       &s.Address,
		CityCode:      s.CityCode,
		CityName:      s.CityName,
		BusinessHours: s.BusinessHours,
		ShopID:        s.ShopId,
		Type:          &stationType,
		ScopeType:     &scopeType,
	}

	if s.Radius != nil {
		radius, err := converters.Decimal("radius", *s.Radius)
		if err != nil {
			return entities.DeliveryStationModify{}, err
		}
		modify.Radius = &radius
	}
	if s.Regions != nil {
		regions := make([]geo.Region, 0, len(*s.Regions))
		for _, r := range *s.Regions {
			regions = append(regions, converters.RegionFromDTO(r))
		}
		modify.Regions = &regions
	}
	if s.Fences != nil {
		fences, err := converters.FencesFromDTO(*s.Fences)
		if err != nil {
			return entities.DeliveryStationModify{}, err
		}
		modify.Fences = &fences
	}
	return modify, nil
}
