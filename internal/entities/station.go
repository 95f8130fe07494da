package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"samecity/internal/geo"
)

// StationType selects who carries the parcel.
type StationType int

const (
	StationSelf StationType = 0
	StationDada StationType = 1
	StationUU   StationType = 2
)

func (t StationType) String() string {
	switch t {
	case StationSelf:
		return "self"
	case StationDada:
		return "dada"
	case StationUU:
		return "uu"
	default:
		return "unknown"
	}
}

func (t StationType) IsProvider() bool {
	return t == StationDada || t == StationUU
}

// ScopeType selects which eligibility check runs at checkout.
type ScopeType int

const (
	ScopeRadius ScopeType = 0
	ScopeRegion ScopeType = 1
	ScopeFence  ScopeType = 2
)

type DeliveryStation struct {
	ID            int64
	MerID         int64
	Name          string
	Phone         string
	Location      geo.Point
	Radius        decimal.Decimal // km
	Address       string
	CityCode      string
	CityName      string
	Regions       []geo.Region
	Fences        []geo.Fence
	BusinessHours string
	ShopID        string // station id on the provider side
	Type          StationType
	ScopeType     ScopeType
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type DeliveryStationModify struct {
	ID            *int64
	MerID         *int64
	Name          *string
	Phone         *string
	Location      *geo.Point
	Radius        *decimal.Decimal
	Address       *string
	CityCode      *string
	CityName      *string
	Regions       *[]geo.Region
	Fences        *[]geo.Fence
	BusinessHours *string
	ShopID        *string
	Type          *StationType
	ScopeType     *ScopeType
}
