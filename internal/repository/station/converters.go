package station

import (
	"encoding/json"
	"fmt"

	"samecity/internal/entities"
	"samecity/internal/geo"
	"samecity/internal/repository"
)

func ToDomain(s *StationDB) (*entities.DeliveryStation, error) {
	if s == nil {
		return nil, nil
	}

	lat, err := repository.ParseDecimal(s.Lat)
	if err != nil {
		return nil, err
	}
	lng, err := repository.ParseDecimal(s.Lng)
	if err != nil {
		return nil, err
	}
	radius, err := repository.ParseDecimal(s.Radius)
	if err != nil {
		return nil, err
	}

	var regions []geo.Region
	if len(s.Regions) > 0 {
		if err := json.Unmarshal(s.Regions, &regions); err != nil {
			return nil, fmt.Errorf("decode regions: %w", err)
		}
	}

	fences, err := geo.UnmarshalFences(s.Fences)
	if err != nil {
		return nil, fmt.Errorf("decode fences: %w", err)
	}

	return &entities.DeliveryStation{
		ID:            s.ID,
		MerID:         s.MerID,
		Name:          s.Name,
		Phone:         s.Phone,
		Location:      geo.Point{Lat: lat, Lng: lng},
		Radius:        radius,
		Address:       s.Address,
		CityCode:      s.CityCode,
		CityName:      s.CityName,
		Regions:       regions,
		Fences:        fences,
		BusinessHours: s.BusinessHours,
		ShopID:        s.ShopID,
		Type:          entities.StationType(s.Type),
		ScopeType:     entities.ScopeType(s.ScopeType),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}, nil
}

func FromDomainModify(m *entities.DeliveryStationModify) (*StationModifyDB, error) {
	if m == nil {
		return nil, nil
	}

	db := &StationModifyDB{
		ID:            m.ID,
		MerID:         m.MerID,
		Name:          m.Name,
		Phone:         m.Phone,
		Address:       m.Address,
		CityCode:      m.CityCode,
		CityName:      m.CityName,
		BusinessHours: m.BusinessHours,
		ShopID:        m.ShopID,
		Radius:        repository.DecimalString(m.Radius),
	}

	if m.Location != nil {
		db.Lat = repository.DecimalString(&m.Location.Lat)
		db.Lng = repository.DecimalString(&m.Location.Lng)
	}
	if m.Type != nil {
		t := int16(*m.Type)
		db.Type = &t
	}
	if m.ScopeType != nil {
		st := int16(*m.ScopeType)
		db.ScopeType = &st
	}

	if m.Regions != nil {
		regions := *m.Regions
		if regions == nil {
			regions = []geo.Region{}
		}
		data, err := json.Marshal(regions)
		if err != nil {
			return nil, fmt.Errorf("encode regions: %w", err)
		}
		db.Regions = data
	}

	if m.Fences != nil {
		data, err := geo.MarshalFences(*m.Fences)
		if err != nil {
			return nil, fmt.Errorf("encode fences: %w", err)
		}
		db.Fences = data
	}

	return db, nil
}
