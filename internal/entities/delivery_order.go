package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"samecity/internal/geo"
)

type DeliveryOrderStatus int

const (
	DeliveryCancelled      DeliveryOrderStatus = -1
	DeliveryCreated        DeliveryOrderStatus = 2 // awaiting pickup
	DeliveryInTransit      DeliveryOrderStatus = 3
	DeliveryCompleted      DeliveryOrderStatus = 4
	DeliveryReturning      DeliveryOrderStatus = 9
	DeliveryReturned       DeliveryOrderStatus = 10
	DeliveryCourierArrived DeliveryOrderStatus = 100
)

func (s DeliveryOrderStatus) String() string {
	switch s {
	case DeliveryCancelled:
		return "cancelled"
	case DeliveryCreated:
		return "created"
	case DeliveryInTransit:
		return "in_transit"
	case DeliveryCompleted:
		return "completed"
	case DeliveryReturning:
		return "returning"
	case DeliveryReturned:
		return "returned"
	case DeliveryCourierArrived:
		return "courier_arrived"
	default:
		return "unknown"
	}
}

func (s DeliveryOrderStatus) Valid() bool {
	return s.String() != "unknown"
}

func (s DeliveryOrderStatus) IsTerminal() bool {
	return s == DeliveryCancelled || s == DeliveryCompleted
}

type DeliveryOrder struct {
	ID                int64
	OrderID           int64
	MerID             int64
	StationID         int64
	StationType       StationType
	Status            DeliveryOrderStatus
	OriginID          string // id we send to the provider, the sales order sn
	ProviderOrderCode string
	From              geo.Point
	To                geo.Point
	FromAddress       string
	ToAddress         string
	Distance          decimal.Decimal // km
	Fee               decimal.Decimal
	DeductFee         decimal.Decimal
	ServiceID         *int64
	CourierName       string
	CourierPhone      string
	CancelReason      string
	FinishCode        string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type DeliveryOrderModify struct {
	ID                *int64
	OrderID           *int64
	MerID             *int64
	StationID         *int64
	StationType       *StationType
	Status            *DeliveryOrderStatus
	OriginID          *string
	ProviderOrderCode *string
	From              *geo.Point
	To                *geo.Point
	FromAddress       *string
	ToAddress         *string
	Distance          *decimal.Decimal
	Fee               *decimal.Decimal
	DeductFee         *decimal.Decimal
	ServiceID         *int64
	CourierName       *string
	CourierPhone      *string
	CancelReason      *string
	FinishCode        *string
}

// DispatchRequest hands a sales order to one of the merchant's own couriers.
type DispatchRequest struct {
	OrderID      int64
	MerID        int64
	ServiceID    int64
	CourierName  string
	CourierPhone string
	Actor        Actor
}

type CancelRequest struct {
	OrderID  int64
	MerID    int64
	ReasonID int
	Reason   string
	Actor    Actor
}
