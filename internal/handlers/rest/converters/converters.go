package converters

import (
	"fmt"

	"github.com/AlekSi/pointer"
	"github.com/shopspring/decimal"
	"samecity/internal/entities"
	"samecity/internal/generated/dto"
	"samecity/internal/geo"
)

// ErrBadDecimal marks a request field that is not a decimal string.
var ErrBadDecimal = fmt.Errorf("%w: malformed decimal", entities.ErrValidation)

func Decimal(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrBadDecimal, field)
	}
	return d, nil
}

func PointFromDTO(p dto.Point) (geo.Point, error) {
	lat, err := Decimal("lat", p.Lat)
	if err != nil {
		return geo.Point{}, err
	}
	lng, err := Decimal("lng", p.Lng)
	if err != nil {
		return geo.Point{}, err
	}
	return geo.Point{Lat: lat, Lng: lng}, nil
}

func PointToDTO(p geo.Point) dto.Point {
	return dto.Point{
		Lat: p.Lat.String(),
		Lng: p.Lng.String(),
	}
}

func RegionFromDTO(r dto.Region) geo.Region {
	return geo.Region{
		ProvinceID: r.ProvinceId,
		CityID:     r.CityId,
		DistrictID: r.DistrictId,
	}
}

func RegionToDTO(r geo.Region) dto.Region {
	return dto.Region{
		ProvinceId: r.ProvinceID,
		CityId:     r.CityID,
		DistrictId: r.DistrictID,
	}
}

func AddressFromDTO(a dto.Address) (geo.Address, error) {
	address := geo.Address{
		Province: a.Province,
		City:     a.City,
		District: a.District,
		Detail:   a.Detail,
	}
	if a.Region != nil {
		address.Region = RegionFromDTO(*a.Region)
	}
	if a.Point != nil {
		p, err := PointFromDTO(*a.Point)
		if err != nil {
			return geo.Address{}, err
		}
		address.Point = &p
	}
	return address, nil
}

func FencesFromDTO(fences []dto.Fence) ([]geo.Fence, error) {
	out := make([]geo.Fence, 0, len(fences))
	for _, f := range fences {
		fence, err := geo.DecodeFence(geo.FenceType(f.Type), f.Payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", entities.ErrValidation, err)
		}
		out = append(out, fence)
	}
	return out, nil
}

func FencesToDTO(fences []geo.Fence) ([]dto.Fence, error) {
	out := make([]dto.Fence, 0, len(fences))
	for _, f := range fences {
		payload, err := geo.EncodeFence(f)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.Fence{
			Type:    dto.FenceType(f.Type()),
			Payload: payload,
		})
	}
	return out, nil
}

func StationToDTO(s entities.DeliveryStation) (dto.Station, error) {
	fences, err := FencesToDTO(s.Fences)
	if err != nil {
		return dto.Station{}, err
	}

	regions := make([]dto.Region, 0, len(s.Regions))
	for _, r := range s.Regions {
		regions = append(regions, RegionToDTO(r))
	}

	return dto.Station{
		Id:            s.ID,
		MerId:         s.MerID,
		Name:          s.Name,
		Phone:         s.Phone,
		Location:      PointToDTO(s.Location),
		Radius:        s.Radius.String(),
		Address:       s.Address,
		CityCode:      s.CityCode,
		CityName:      s.CityName,
		Regions:       regions,
		Fences:        fences,
		BusinessHours: s.BusinessHours,
		ShopId:        s.ShopID,
		Type:          int(s.Type),
		ScopeType:     int(s.ScopeType),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}, nil
}

func DeliveryOrderToDTO(o entities.DeliveryOrder) dto.DeliveryOrder {
	return dto.DeliveryOrder{
		Id:                o.ID,
		OrderId:           o.OrderID,
		MerId:             o.MerID,
		StationId:         o.StationID,
		StationType:       o.StationType.String(),
		Status:            int(o.Status),
		StatusText:        o.Status.String(),
		OriginId:          o.OriginID,
		ProviderOrderCode: o.ProviderOrderCode,
		FromAddress:       o.FromAddress,
		ToAddress:         o.ToAddress,
		Distance:          o.Distance.String(),
		Fee:               o.Fee.StringFixed(2),
		DeductFee:         o.DeductFee.StringFixed(2),
		ServiceId:         o.ServiceID,
		CourierName:       o.CourierName,
		CourierPhone:      o.CourierPhone,
		CancelReason:      o.CancelReason,
		FinishCode:        o.FinishCode,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func FeeConfigFromDTO(c dto.FeeConfig) (entities.FeeConfig, error) {
	var (
		cfg entities.FeeConfig
		err error
	)

	cfg.PremiumEnabled = c.PremiumEnabled
	if cfg.MinDeliveryAmount, err = Decimal("min_delivery_amount", c.MinDeliveryAmount); err != nil {
		return cfg, err
	}
	if cfg.FreeShippingAmount, err = Decimal("free_shipping_amount", c.FreeShippingAmount); err != nil {
		return cfg, err
	}
	if cfg.BaseShippingFee, err = Decimal("base_shipping_fee", c.BaseShippingFee); err != nil {
		return cfg, err
	}
	if c.DistancePremium != nil {
		if cfg.DistancePremium, err = tieredRuleFromDTO("distance_premium", *c.DistancePremium); err != nil {
			return cfg, err
		}
	}
	if c.WeightPremium != nil {
		if cfg.WeightPremium, err = tieredRuleFromDTO("weight_premium", *c.WeightPremium); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func FeeConfigToDTO(enabled bool, c entities.FeeConfig) dto.FeeConfig {
	return dto.FeeConfig{
		Enabled:            enabled,
		MinDeliveryAmount:  c.MinDeliveryAmount.StringFixed(2),
		FreeShippingAmount: c.FreeShippingAmount.StringFixed(2),
		BaseShippingFee:    c.BaseShippingFee.StringFixed(2),
		PremiumEnabled:     c.PremiumEnabled,
		DistancePremium:    tieredRuleToDTO(c.DistancePremium),
		WeightPremium:      tieredRuleToDTO(c.WeightPremium),
	}
}

func tieredRuleFromDTO(field string, r dto.TieredRule) (entities.TieredRule, error) {
	var (
		rule entities.TieredRule
		err  error
	)

	if r.First != nil {
		if rule.First, err = Decimal(field+".first", *r.First); err != nil {
			return rule, err
		}
	}

	if r.Stairs != nil {
		for i, s := range *r.Stairs {
			prefix := fmt.Sprintf("%s.stairs[%d]", field, i)
			var stair entities.Stair
			if stair.Start, err = Decimal(prefix+".start", s.Start); err != nil {
				return rule, err
			}
			if stair.End, err = Decimal(prefix+".end", s.End); err != nil {
				return rule, err
			}
			if stair.Step, err = Decimal(prefix+".step", s.Step); err != nil {
				return rule, err
			}
			if stair.Amount, err = Decimal(prefix+".amount", s.Amount); err != nil {
				return rule, err
			}
			rule.Stairs = append(rule.Stairs, stair)
		}
	}

	if r.Last != nil {
		if rule.Last.Threshold, err = Decimal(field+".last.threshold", r.Last.Threshold); err != nil {
			return rule, err
		}
		if rule.Last.Step, err = Decimal(field+".last.step", r.Last.Step); err != nil {
			return rule, err
		}
		if rule.Last.Amount, err = Decimal(field+".last.amount", r.Last.Amount); err != nil {
			return rule, err
		}
	}
	return rule, nil
}

func tieredRuleToDTO(r entities.TieredRule) *dto.TieredRule {
	if r.IsZero() {
		return nil
	}

	stairs := make([]dto.Stair, 0, len(r.Stairs))
	for _, s := range r.Stairs {
		stairs = append(stairs, dto.Stair{
			Start:  s.Start.String(),
			End:    s.End.String(),
			Step:   s.Step.String(),
			Amount: s.Amount.String(),
		})
	}

	return &dto.TieredRule{
		First:  pointer.To(r.First.String()),
		Stairs: &stairs,
		Last: &dto.Tail{
			Threshold: r.Last.Threshold.String(),
			Step:      r.Last.Step.String(),
			Amount:    r.Last.Amount.String(),
		},
	}
}
