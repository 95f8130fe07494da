package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"samecity/internal/geo"
)

// TieredRule is a piecewise step surcharge over one metric (km or kg).
type TieredRule struct {
	First  decimal.Decimal // no surcharge at or below this value
	Stairs []Stair
	Last   Tail
}

type Stair struct {
	Start  decimal.Decimal
	End    decimal.Decimal
	Step   decimal.Decimal
	Amount decimal.Decimal
}

// Tail is the open-ended tier above Threshold.
type Tail struct {
	Threshold decimal.Decimal
	Step      decimal.Decimal
	Amount    decimal.Decimal
}

func (r TieredRule) IsZero() bool {
	return r.First.IsZero() && len(r.Stairs) == 0 && r.Last.Step.IsZero() && r.Last.Threshold.IsZero()
}

type FeeConfig struct {
	MinDeliveryAmount  decimal.Decimal
	FreeShippingAmount decimal.Decimal
	BaseShippingFee    decimal.Decimal
	PremiumEnabled     bool
	DistancePremium    TieredRule
	WeightPremium      TieredRule
}

// MerchantConfig holds the per-merchant delivery settings.
type MerchantConfig struct {
	MerID               int64
	FeeEnabled          bool
	Fee                 FeeConfig
	CourierClaimEnabled bool
	UpdatedAt           time.Time
}

type FeeRequest struct {
	StationID   int64
	MerID       int64
	OrderTotal  decimal.Decimal
	TotalWeight decimal.Decimal
	Destination geo.Address
}

type FeeQuote struct {
	Fee         decimal.Decimal
	Distance    decimal.Decimal
	Destination geo.Point
}
