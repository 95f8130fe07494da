package uu

import (
	"strings"

	"github.com/shopspring/decimal"
)

// number accepts both 5 and "5".
type number string

func (n *number) UnmarshalJSON(b []byte) error {
	*n = number(strings.Trim(string(b), `"`))
	return nil
}

type response struct {
	ReturnCode string `json:"return_code"`
	ReturnMsg  string `json:"return_msg"`
}

type priceResult struct {
	response
	PriceToken   string          `json:"price_token"`
	TotalMoney   decimal.Decimal `json:"total_money"`
	NeedPaymoney decimal.Decimal `json:"need_paymoney"`
	Distance     decimal.Decimal `json:"distance"` // meters
}

type addOrderResult struct {
	response
	OrderCode string `json:"ordercode"`
	OriginID  string `json:"origin_id"`
}

type cityListResult struct {
	response
	CityList []struct {
		CityName string `json:"city_name"`
		CityCode string `json:"city_code"`
	} `json:"city_list"`
}

type balanceResult struct {
	response
	AccountMoney decimal.Decimal `json:"AccountMoney"`
}

type orderDetailResult struct {
	response
	OrderCode    string          `json:"order_code"`
	State        number          `json:"state"`
	StateText    string          `json:"state_text"`
	DriverName   string          `json:"driver_name"`
	DriverMobile string          `json:"driver_mobile"`
	OrderPrice   decimal.Decimal `json:"order_price"`
	Distance     decimal.Decimal `json:"distance"`
}

// Callback is the form UU posts to the order callback URL.
type Callback struct {
	OrderCode    string          `json:"order_code"`
	OriginID     string          `json:"origin_id"`
	State        number          `json:"state"`
	StateText    string          `json:"state_text"`
	DriverName   string          `json:"driver_name"`
	DriverMobile string          `json:"driver_mobile"`
	DeductFee    decimal.Decimal `json:"deduct_fee"`
	CancelReason string          `json:"cancel_reason"`
	Sign         string          `json:"sign"`
}
