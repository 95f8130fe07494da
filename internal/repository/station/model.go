package station

import "time"

type StationDB struct {
	ID            int64
	MerID         int64
	Name          string
	Phone         string
	Lat           string
	Lng           string
	Radius        string
	Address       string
	CityCode      string
	CityName      string
	Regions       []byte
	Fences        []byte
	BusinessHours string
	ShopID        string
	Type          int16
	ScopeType     int16
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type StationModifyDB struct {
	ID            *int64
	MerID         *int64
	Name          *string
	Phone         *string
	Lat           *string
	Lng           *string
	Radius        *string
	Address       *string
	CityCode      *string
	CityName      *string
	Regions       []byte
	Fences        []byte
	BusinessHours *string
	ShopID        *string
	Type          *int16
	ScopeType     *int16
}
