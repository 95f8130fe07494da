package station

import (
	"fmt"
	"strings"

	"samecity/internal/entities"
)

func isValidID(id int64) bool {
	return id > 0
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// isValidPhone accepts digits with an optional leading "+" and dashes, e.g.
// landlines like 021-6888-8888.
func isValidPhone(phone string) bool {
	phone = strings.TrimPrefix(strings.TrimSpace(phone), "+")
	if phone == "" {
		return false
	}

	digits := 0
	for _, char := range phone {
		switch {
		case char >= '0' && char <= '9':
			digits++
		case char == '-':
		default:
			return false
		}
	}
	return digits >= 5
}

func isValidType(t entities.StationType) bool {
	return t == entities.StationSelf || t.IsProvider()
}

func isValidScope(s entities.ScopeType) bool {
	switch s {
	case entities.ScopeRadius, entities.ScopeRegion, entities.ScopeFence:
		return true
	default:
		return false
	}
}

func validateFields(s entities.DeliveryStationModify) error {
	if s.Name != nil && !isValidName(*s.Name) {
		return ErrInvalidName
	}
	if s.Phone != nil && *s.Phone != "" && !isValidPhone(*s.Phone) {
		return ErrInvalidPhone
	}
	if s.Location != nil && (s.Location.IsZero() || !s.Location.Valid()) {
		return ErrInvalidLocation
	}
	if s.Radius != nil && s.Radius.IsNegative() {
		return ErrInvalidRadius
	}
	if s.Type != nil && !isValidType(*s.Type) {
		return ErrInvalidType
	}
	if s.ScopeType != nil && !isValidScope(*s.ScopeType) {
		return ErrInvalidScope
	}
	if s.Fences != nil {
		for i, f := range *s.Fences {
			if err := f.Validate(); err != nil {
				return fmt.Errorf("%w: fence %d: %w", ErrInvalidFence, i, err)
			}
		}
	}
	return nil
}

// validateStation checks the rules that span fields on the merged station.
func validateStation(s entities.DeliveryStation) error {
	switch s.ScopeType {
	case entities.ScopeRadius:
		if !s.Radius.IsPositive() {
			return ErrInvalidRadius
		}
	case entities.ScopeRegion:
		if len(s.Regions) == 0 {
			return ErrMissingRegions
		}
	case entities.ScopeFence:
		if len(s.Fences) == 0 {
			return ErrMissingFences
		}
	}

	if s.Type.IsProvider() && (strings.TrimSpace(s.ShopID) == "" || strings.TrimSpace(s.CityCode) == "") {
		return ErrMissingProviderShop
	}
	return nil
}

// merge overlays the set fields of m on s.
func merge(s entities.DeliveryStation, m entities.DeliveryStationModify) entities.DeliveryStation {
	if m.Name != nil {
		s.Name = *m.Name
	}
	if m.Phone != nil {
		s.Phone = *m.Phone
	}
	if m.Location != nil {
		s.Location = *m.Location
	}
	if m.Radius != nil {
		s.Radius = *m.Radius
	}
	if m.Address != nil {
		s.Address = *m.Address
	}
	if m.CityCode != nil {
		s.CityCode = *m.CityCode
	}
	if m.CityName != nil {
		s.CityName = *m.CityName
	}
	if m.Regions != nil {
		s.Regions = *m.Regions
	}
	if m.Fences != nil {
		s.Fences = *m.Fences
	}
	if m.BusinessHours != nil {
		s.BusinessHours = *m.BusinessHours
	}
	if m.ShopID != nil {
		s.ShopID = *m.ShopID
	}
	if m.Type != nil {
		s.Type = *m.Type
	}
	if m.ScopeType != nil {
		s.ScopeType = *m.ScopeType
	}
	return s
}
