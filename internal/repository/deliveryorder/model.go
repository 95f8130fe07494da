package deliveryorder

import "time"

type DeliveryOrderDB struct {
	ID                int64
	OrderID           int64
	MerID             int64
	StationID         int64
	StationType       int16
	Status            int16
	OriginID          string
	ProviderOrderCode string
	FromLat           string
	FromLng           string
	ToLat             string
	ToLng             string
	FromAddress       string
	ToAddress         string
	Distance          string
	Fee               string
	DeductFee         string
	ServiceID         *int64
	CourierName       string
	CourierPhone      string
	CancelReason      string
	FinishCode        string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
