package salesorder

import "time"

type SalesOrderDB struct {
	ID             int64
	MerID          int64
	OrderSN        string
	Status         int16
	DeliveryType   int16
	EnableAssigned *int16
	SyncStatus     int16
	SyncDesc       string
	StationID      int64
	ReceiverName   string
	ReceiverPhone  string
	Province       string
	City           string
	District       string
	AddressDetail  string
	ProvinceID     int64
	CityID         int64
	DistrictID     int64
	Lat            *string
	Lng            *string
	TotalPrice     string
	TotalWeight    string
	CourierName    string
	CourierPhone   string
	UpdatedAt      time.Time
}
