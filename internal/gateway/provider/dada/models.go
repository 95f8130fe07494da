package dada

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type envelope struct {
	AppKey    string `json:"app_key"`
	Body      string `json:"body"`
	Format    string `json:"format"`
	Timestamp string `json:"timestamp"`
	V         string `json:"v"`
	SourceID  string `json:"source_id"`
	Signature string `json:"signature"`
}

type response struct {
	Status string          `json:"status"`
	Code   int             `json:"code"`
	Msg    string          `json:"msg"`
	Result json.RawMessage `json:"result"`
}

type quoteRequest struct {
	ShopNo          string  `json:"shop_no"`
	OriginID        string  `json:"origin_id"`
	CityCode        string  `json:"city_code"`
	CargoPrice      float64 `json:"cargo_price"`
	CargoWeight     float64 `json:"cargo_weight"`
	IsPrepay        int     `json:"is_prepay"`
	ReceiverName    string  `json:"receiver_name"`
	ReceiverAddress string  `json:"receiver_address"`
	ReceiverPhone   string  `json:"receiver_phone"`
	ReceiverLat     float64 `json:"receiver_lat"`
	ReceiverLng     float64 `json:"receiver_lng"`
	Callback        string  `json:"callback"`
}

type quoteResult struct {
	Distance   decimal.Decimal `json:"distance"` // meters
	Fee        decimal.Decimal `json:"fee"`
	DeliverFee decimal.Decimal `json:"deliverFee"`
	DeliveryNo string          `json:"deliveryNo"`
}

type addAfterQueryRequest struct {
	DeliveryNo string `json:"deliveryNo"`
}

type cancelRequest struct {
	OrderID        string `json:"order_id"`
	CancelReasonID int    `json:"cancel_reason_id"`
	CancelReason   string `json:"cancel_reason"`
}

type reasonResult struct {
	ID     int    `json:"id"`
	Reason string `json:"reason"`
}

type cityResult struct {
	CityName string `json:"cityName"`
	CityCode string `json:"cityCode"`
}

type balanceRequest struct {
	Category int `json:"category"`
}

type balanceResult struct {
	DeliverBalance   decimal.Decimal `json:"deliverBalance"`
	RedPacketBalance decimal.Decimal `json:"redPacketBalance"`
}

type statusRequest struct {
	OrderID string `json:"order_id"`
}

type statusResult struct {
	OrderID          string          `json:"orderId"`
	StatusCode       int             `json:"statusCode"`
	StatusMsg        string          `json:"statusMsg"`
	TransporterName  string          `json:"transporterName"`
	TransporterPhone string          `json:"transporterPhone"`
	Distance         decimal.Decimal `json:"distance"`
	DeliveryFee      decimal.Decimal `json:"deliveryFee"`
	ActualFee        decimal.Decimal `json:"actualFee"`
	DeductFee        decimal.Decimal `json:"deductFee"`
	FinishCode       string          `json:"finishCode"`
}

// Callback is the body Dada posts to the order callback URL.
type Callback struct {
	ClientID     string          `json:"client_id"`
	OrderID      string          `json:"order_id"`
	OrderStatus  int             `json:"order_status"`
	CancelReason string          `json:"cancel_reason"`
	CancelFrom   int             `json:"cancel_from"`
	UpdateTime   int64           `json:"update_time"`
	Signature    string          `json:"signature"`
	DmID         int64           `json:"dm_id"`
	DmName       string          `json:"dm_name"`
	DmMobile     string          `json:"dm_mobile"`
	FinishCode   string          `json:"finish_code"`
	DeductFee    decimal.Decimal `json:"deductFee"`
}
