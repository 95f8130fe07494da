package salesorder

import (
	"samecity/internal/entities"
	"samecity/internal/geo"
	"samecity/internal/repository"
)

func ToDomain(s *SalesOrderDB) (*entities.SalesOrder, error) {
	if s == nil {
		return nil, nil
	}

	totalPrice, err := repository.ParseDecimal(s.TotalPrice)
	if err != nil {
		return nil, err
	}
	totalWeight, err := repository.ParseDecimal(s.TotalWeight)
	if err != nil {
		return nil, err
	}

	address := geo.Address{
		Province: s.Province,
		City:     s.City,
		District: s.District,
		Detail:   s.AddressDetail,
		Region: geo.Region{
			ProvinceID: s.ProvinceID,
			CityID:     s.CityID,
			DistrictID: s.DistrictID,
		},
	}

	// coordinates are only trusted when both are present
	if s.Lat != nil && s.Lng != nil {
		lat, err := repository.ParseDecimal(*s.Lat)
		if err != nil {
			return nil, err
		}
		lng, err := repository.ParseDecimal(*s.Lng)
		if err != nil {
			return nil, err
		}
		address.Point = &geo.Point{Lat: lat, Lng: lng}
	}

	order := &entities.SalesOrder{
		ID:            s.ID,
		MerID:         s.MerID,
		OrderSN:       s.OrderSN,
		Status:        entities.SalesOrderStatus(s.Status),
		DeliveryType:  int(s.DeliveryType),
		SyncStatus:    entities.SyncStatus(s.SyncStatus),
		SyncDesc:      s.SyncDesc,
		StationID:     s.StationID,
		ReceiverName:  s.ReceiverName,
		ReceiverPhone: s.ReceiverPhone,
		Address:       address,
		TotalPrice:    totalPrice,
		TotalWeight:   totalWeight,
		CourierName:   s.CourierName,
		CourierPhone:  s.CourierPhone,
		UpdatedAt:     s.UpdatedAt,
	}
	if s.EnableAssigned != nil {
		mode := entities.AssignMode(*s.EnableAssigned)
		order.EnableAssigned = &mode
	}
	return order, nil
}

func setMap(m entities.SalesOrderModify) map[string]any {
	values := make(map[string]any, 8)

	if m.Status != nil {
		values["status"] = int16(*m.Status)
	}
	if m.DeliveryType != nil {
		values["delivery_type"] = int16(*m.DeliveryType)
	}
	if m.EnableAssigned != nil {
		values["enable_assigned"] = int16(*m.EnableAssigned)
	}
	if m.SyncStatus != nil {
		values["sync_status"] = int16(*m.SyncStatus)
	}
	if m.SyncDesc != nil {
		values["sync_desc"] = *m.SyncDesc
	}
	if m.CourierName != nil {
		values["courier_name"] = *m.CourierName
	}
	if m.CourierPhone != nil {
		values["courier_phone"] = *m.CourierPhone
	}
	return values
}
