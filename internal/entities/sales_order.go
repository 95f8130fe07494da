package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"samecity/internal/geo"
)

type SalesOrderStatus int

const (
	SalesAwaitingShipment SalesOrderStatus = 0
	SalesShipped          SalesOrderStatus = 1
	SalesAwaitingReview   SalesOrderStatus = 2
)

// DeliveryTypeSameCity is the sales order delivery_type for same-city
// delivery.
const DeliveryTypeSameCity = 5

type AssignMode int

const (
	AssignClaimed  AssignMode = 0
	AssignAssigned AssignMode = 1
)

type SyncStatus int

const (
	SyncNone   SyncStatus = 0
	SyncOK     SyncStatus = 1
	SyncFailed SyncStatus = -1
)

type SalesOrder struct {
	ID             int64
	MerID          int64
	OrderSN        string
	Status         SalesOrderStatus
	DeliveryType   int
	EnableAssigned *AssignMode
	SyncStatus     SyncStatus
	SyncDesc       string
	StationID      int64
	ReceiverName   string
	ReceiverPhone  string
	Address        geo.Address
	TotalPrice     decimal.Decimal
	TotalWeight    decimal.Decimal
	CourierName    string
	CourierPhone   string
	UpdatedAt      time.Time
}

type SalesOrderModify struct {
	ID             *int64
	Status         *SalesOrderStatus
	DeliveryType   *int
	EnableAssigned *AssignMode
	SyncStatus     *SyncStatus
	SyncDesc       *string
	CourierName    *string
	CourierPhone   *string
}

// DeliveredEvent is published once a delivery order completes.
type DeliveredEvent struct {
	OrderID     int64     `json:"order_id"`
	MerID       int64     `json:"mer_id"`
	OrderSN     string    `json:"order_sn"`
	StationType string    `json:"station_type"`
	DeliveredAt time.Time `json:"delivered_at"`
}

// ReadyToShipEvent is consumed from the order events topic.
type ReadyToShipEvent struct {
	OrderID int64  `json:"order_id"`
	MerID   int64  `json:"mer_id"`
	OrderSN string `json:"order_sn"`
}
