package deliveryorder

import (
	"github.com/shopspring/decimal"
	"samecity/internal/entities"
	"samecity/internal/geo"
	"samecity/internal/repository"
)

func ToDomain(d *DeliveryOrderDB) (*entities.DeliveryOrder, error) {
	if d == nil {
		return nil, nil
	}

	var parsed [7]decimal.Decimal
	for i, s := range []string{d.FromLat, d.FromLng, d.ToLat, d.ToLng, d.Distance, d.Fee, d.DeductFee} {
		v, err := repository.ParseDecimal(s)
		if err != nil {
			return nil, err
		}
		parsed[i] = v
	}

	return &entities.DeliveryOrder{
		ID:                d.ID,
		OrderID:           d.OrderID,
		MerID:             d.MerID,
		StationID:         d.StationID,
		StationType:       entities.StationType(d.StationType),
		Status:            entities.DeliveryOrderStatus(d.Status),
		OriginID:          d.OriginID,
		ProviderOrderCode: d.ProviderOrderCode,
		From:              geo.Point{Lat: parsed[0], Lng: parsed[1]},
		To:                geo.Point{Lat: parsed[2], Lng: parsed[3]},
		FromAddress:       d.FromAddress,
		ToAddress:         d.ToAddress,
		Distance:          parsed[4],
		Fee:               parsed[5],
		DeductFee:         parsed[6],
		ServiceID:         d.ServiceID,
		CourierName:       d.CourierName,
		CourierPhone:      d.CourierPhone,
		CancelReason:      d.CancelReason,
		FinishCode:        d.FinishCode,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}, nil
}

// setMap returns the columns present in m. Coordinates are written in pairs.
func setMap(m entities.DeliveryOrderModify) map[string]any {
	values := make(map[string]any, 20)

	if m.OrderID != nil {
		values["order_id"] = *m.OrderID
	}
	if m.MerID != nil {
		values["mer_id"] = *m.MerID
	}
	if m.StationID != nil {
		values["station_id"] = *m.StationID
	}
	if m.StationType != nil {
		values["station_type"] = int16(*m.StationType)
	}
	if m.Status != nil {
		values["status"] = int16(*m.Status)
	}
	if m.OriginID != nil {
		values["origin_id"] = *m.OriginID
	}
	if m.ProviderOrderCode != nil {
		values["provider_order_code"] = *m.ProviderOrderCode
	}
	if m.From != nil {
		values["from_lat"] = m.From.Lat.String()
		values["from_lng"] = m.From.Lng.String()
	}
	if m.To != nil {
		values["to_lat"] = m.To.Lat.String()
		values["to_lng"] = m.To.Lng.String()
	}
	if m.FromAddress != nil {
		values["from_address"] = *m.FromAddress
	}
	if m.ToAddress != nil {
		values["to_address"] = *m.ToAddress
	}
	if m.Distance != nil {
		values["distance"] = m.Distance.String()
	}
	if m.Fee != nil {
		values["fee"] = m.Fee.String()
	}
	if m.DeductFee != nil {
		values["deduct_fee"] = m.DeductFee.String()
	}
	if m.ServiceID != nil {
		values["service_id"] = *m.ServiceID
	}
	if m.CourierName != nil {
		values["courier_name"] = *m.CourierName
	}
	if m.CourierPhone != nil {
		values["courier_phone"] = *m.CourierPhone
	}
	if m.CancelReason != nil {
		values["cancel_reason"] = *m.CancelReason
	}
	if m.FinishCode != nil {
		values["finish_code"] = *m.FinishCode
	}
	return values
}
