package entities

import (
	"github.com/shopspring/decimal"
	"samecity/internal/geo"
)

type ProviderQuoteRequest struct {
	Station     DeliveryStation
	Order       SalesOrder
	OriginID    string
	Destination geo.Point
	Distance    decimal.Decimal // km, locally computed
}

type ProviderQuote struct {
	Request  ProviderQuoteRequest
	Fee      decimal.Decimal
	Distance decimal.Decimal // km
	// Token identifies the quote on the provider side (Dada deliveryNo,
	// UU price_token).
	Token string
	// PayAmount is what the provider will debit, when it differs from Fee.
	PayAmount decimal.Decimal
}

type ProviderCancelRequest struct {
	Station           DeliveryStation
	OriginID          string
	ProviderOrderCode string
	ReasonID          int
	Reason            string
}

type CancelReason struct {
	ID     int    `json:"id"`
	Reason string `json:"reason"`
}

type City struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Balance struct {
	Amount decimal.Decimal
}

type ProviderOrderDetail struct {
	ProviderOrderCode string
	Status            DeliveryOrderStatus
	StatusText        string
	CourierName       string
	CourierPhone      string
	Fee               decimal.Decimal
	DeductFee         decimal.Decimal
	Distance          decimal.Decimal
	FinishCode        string
}

// ProviderNotification is an inbound webhook after normalization to the
// canonical status set.
type ProviderNotification struct {
	Provider          StationType
	OriginID          string
	ProviderOrderCode string
	Status            DeliveryOrderStatus
	RawStatus         int
	StatusText        string
	CancelReason      string
	CourierName       string
	CourierPhone      string
	DeductFee         decimal.Decimal
	FinishCode        string
}
