package uu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"samecity/internal/entities"
	"samecity/internal/gateway/provider"
	"samecity/internal/pkg/config"
)

const returnCodeOK = "ok"

const (
	pathGetOrderPrice  = "/v2_0/getorderprice.ashx"
	pathAddOrder       = "/v2_0/addorder.ashx"
	pathCancelOrder    = "/v2_0/cancelorder.ashx"
	pathGetCityList    = "/v2_0/getcitylist.ashx"
	pathGetBalance     = "/v2_0/getbalancedetail.ashx"
	pathGetOrderDetail = "/v2_0/getorderdetail.ashx"
)

const (
	sendTypeToCustomer  = "0"
	pushTypeNoSMS       = "0"
	specialTypeStandard = "0"
)

var metersPerKM = decimal.NewFromInt(1000)

// UU has no cancel reason dictionary; reasons are free text.
var cancelReasons = []entities.CancelReason{
	{ID: 1, Reason: "merchant withdrew the order"},
	{ID: 2, Reason: "customer cancelled"},
	{ID: 3, Reason: "no courier accepted"},
}

type Gateway struct {
	client  *resty.Client
	cfg     config.UU
	timeout time.Duration
	now     func() time.Time
	nonce   func() string
}

func New(cfg config.UU, timeout time.Duration) *Gateway {
	g := &Gateway{
		client:  resty.New().SetBaseURL(cfg.BaseURL),
		cfg:     cfg,
		timeout: timeout,
		now:     time.Now,
	}
	g.nonce = func() string {
		return strconv.FormatInt(g.now().UnixNano(), 36)
	}
	return g
}

func (g *Gateway) QuotePrice(ctx context.Context, req entities.ProviderQuoteRequest) (*entities.ProviderQuote, error) {
	params := map[string]string{
		"origin_id":    req.OriginID,
		"from_address": req.Station.Address,
		"to_address":   req.Order.Address.String(),
		"city_name":    req.Station.CityName,
		"from_lat":     req.Station.Location.Lat.String(),
		"from_lng":     req.Station.Location.Lng.String(),
		"to_lat":       req.Destination.Lat.String(),
		"to_lng":       req.Destination.Lng.String(),
		"send_type":    sendTypeToCustomer,
	}

	var result priceResult
	if err := g.call(ctx, "QuotePrice", pathGetOrderPrice, params, &result); err != nil {
		return nil, fmt.Errorf("uu quote: %w", err)
	}

	return &entities.ProviderQuote{
		Request:   req,
		Fee:       result.TotalMoney,
		Distance:  result.Distance.Div(metersPerKM).Round(3),
		Token:     result.PriceToken,
		PayAmount: result.NeedPaymoney,
	}, nil
}

func (g *Gateway) CreateOrder(ctx context.Context, quote entities.ProviderQuote) (string, error) {
	if quote.Token == "" {
		return "", fmt.Errorf("uu create: %w", &entities.ProviderError{
			Provider: entities.StationUU,
			Method:   "CreateOrder",
			Message:  "quote has no price_token",
		})
	}

	params := map[string]string{
		"price_token":      quote.Token,
		"order_price":      quote.Fee.String(),
		"balance_paymoney": quote.PayAmount.String(),
		"receiver":         quote.Request.Order.ReceiverName,
		"receiver_phone":   quote.Request.Order.ReceiverPhone,
		"callback_url":     g.cfg.CallbackURL,
		"push_type":        pushTypeNoSMS,
		"special_type":     specialTypeStandard,
	}

	var result addOrderResult
	if err := g.call(ctx, "CreateOrder", pathAddOrder, params, &result); err != nil {
		return "", fmt.Errorf("uu create: %w", err)
	}
	return result.OrderCode, nil
}

func (g *Gateway) CancelOrder(ctx context.Context, req entities.ProviderCancelRequest) error {
	params := map[string]string{
		"order_code": req.ProviderOrderCode,
		"origin_id":  req.OriginID,
		"reason":     req.Reason,
	}

	if err := g.call(ctx, "CancelOrder", pathCancelOrder, params, &response{}); err != nil {
		return fmt.Errorf("uu cancel: %w", err)
	}
	return nil
}

func (g *Gateway) ListCancelReasons(context.Context, entities.DeliveryStation) ([]entities.CancelReason, error) {
	reasons := make([]entities.CancelReason, len(cancelReasons))
	copy(reasons, cancelReasons)
	return reasons, nil
}

func (g *Gateway) ListCities(ctx context.Context, _ entities.DeliveryStation) ([]entities.City, error) {
	var result cityListResult
	if err := g.call(ctx, "ListCities", pathGetCityList, map[string]string{}, &result); err != nil {
		return nil, fmt.Errorf("uu cities: %w", err)
	}

	cities := make([]entities.City, 0, len(result.CityList))
	for _, c := range result.CityList {
		cities = append(cities, entities.City{Code: c.CityCode, Name: c.CityName})
	}
	return cities, nil
}

func (g *Gateway) GetBalance(ctx context.Context, _ entities.DeliveryStation) (*entities.Balance, error) {
	var result balanceResult
	if err := g.call(ctx, "GetBalance", pathGetBalance, map[string]string{}, &result); err != nil {
		return nil, fmt.Errorf("uu balance: %w", err)
	}
	return &entities.Balance{Amount: result.AccountMoney}, nil
}

func (g *Gateway) GetOrderDetail(ctx context.Context, order entities.DeliveryOrder) (*entities.ProviderOrderDetail, error) {
	params := map[string]string{
		"order_code": order.ProviderOrderCode,
		"origin_id":  order.OriginID,
	}

	var result orderDetailResult
	if err := g.call(ctx, "GetOrderDetail", pathGetOrderDetail, params, &result); err != nil {
		return nil, fmt.Errorf("uu order detail: %w", err)
	}

	status := order.Status
	if raw, err := strconv.Atoi(string(result.State)); err == nil {
		if s, ok := CanonicalStatus(raw); ok {
			status = s
		}
	}

	return &entities.ProviderOrderDetail{
		ProviderOrderCode: result.OrderCode,
		Status:            status,
		StatusText:        result.StateText,
		CourierName:       result.DriverName,
		CourierPhone:      result.DriverMobile,
		Fee:               result.OrderPrice,
		Distance:          result.Distance.Div(metersPerKM).Round(3),
	}, nil
}

// envelope is implemented by every result type through the embedded
// response.
type envelope interface {
	status() (string, string)
}

func (r *response) status() (string, string) {
	return r.ReturnCode, r.ReturnMsg
}

func (g *Gateway) call(ctx context.Context, method, path string, params map[string]string, out envelope) error {
	return provider.Execute(ctx, g.timeout, entities.StationUU, method, func(ctx context.Context) error {
		form := make(map[string]string, len(params)+5)
		for k, v := range params {
			form[k] = v
		}
		form["appid"] = g.cfg.AppID
		form["openid"] = g.cfg.OpenID
		form["nonce_str"] = g.nonce()
		form["timestamp"] = strconv.FormatInt(g.now().Unix(), 10)
		form["sign"] = sign(g.cfg.AppKey, form)

		resp, err := g.client.R().
			SetContext(ctx).
			SetFormData(form).
			Post(path)
		if err != nil {
			return err
		}

		if resp.StatusCode() != http.StatusOK {
			return &entities.ProviderError{
				Provider: entities.StationUU,
				Method:   method,
				Message:  fmt.Sprintf("unexpected http status %d", resp.StatusCode()),
			}
		}

		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}

		code, msg := out.status()
		if !strings.EqualFold(code, returnCodeOK) {
			return &entities.ProviderError{
				Provider: entities.StationUU,
				Method:   method,
				Message:  fmt.Sprintf("%s: %s", code, msg),
			}
		}
		return nil
	})
}
