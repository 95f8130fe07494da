package dada

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"samecity/internal/entities"
	"samecity/internal/gateway/provider"
	"samecity/internal/pkg/config"
)

const (
	apiVersion = "1.0"
	apiFormat  = "json"

	// forcedCancelReasonID is "merchant withdrew the order" in Dada's
	// cancel reason list; the merchant's own reason is sent as text.
	forcedCancelReasonID = 36

	balanceCategoryDelivery = 3
)

const (
	pathQueryDeliverFee = "/api/order/queryDeliverFee"
	pathAddAfterQuery   = "/api/order/addAfterQuery"
	pathFormalCancel    = "/api/order/formalCancel"
	pathCancelReasons   = "/api/order/cancel/reasons"
	pathCityList        = "/api/cityCode/list"
	pathBalance         = "/api/balance/query"
	pathOrderStatus     = "/api/order/status/query"
)

var metersPerKM = decimal.NewFromInt(1000)

type Gateway struct {
	client  *resty.Client
	cfg     config.Dada
	timeout time.Duration
	now     func() time.Time
}

func New(cfg config.Dada, timeout time.Duration) *Gateway {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json")

	return &Gateway{
		client:  client,
		cfg:     cfg,
		timeout: timeout,
		now:     time.Now,
	}
}

func (g *Gateway) QuotePrice(ctx context.Context, req entities.ProviderQuoteRequest) (*entities.ProviderQuote, error) {
	body := quoteRequest{
		ShopNo:          req.Station.ShopID,
		OriginID:        req.OriginID,
		CityCode:        req.Station.CityCode,
		CargoPrice:      req.Order.TotalPrice.InexactFloat64(),
		CargoWeight:     req.Order.TotalWeight.InexactFloat64(),
		ReceiverName:    req.Order.ReceiverName,
		ReceiverAddress: req.Order.Address.String(),
		ReceiverPhone:   req.Order.ReceiverPhone,
		ReceiverLat:     req.Destination.Lat.InexactFloat64(),
		ReceiverLng:     req.Destination.Lng.InexactFloat64(),
		Callback:        g.cfg.CallbackURL,
	}

	var result quoteResult
	if err := g.call(ctx, "QuotePrice", pathQueryDeliverFee, body, &result); err != nil {
		return nil, fmt.Errorf("dada quote: %w", err)
	}

	return &entities.ProviderQuote{
		Request:   req,
		Fee:       result.Fee,
		Distance:  result.Distance.Div(metersPerKM).Round(3),
		Token:     result.DeliveryNo,
		PayAmount: result.DeliverFee,
	}, nil
}

// CreateOrder confirms a previous quote. Dada keys the order by the quote's
// deliveryNo, which is kept as the provider order code.
func (g *Gateway) CreateOrder(ctx context.Context, quote entities.ProviderQuote) (string, error) {
	if quote.Token == "" {
		return "", fmt.Errorf("dada create: %w", &entities.ProviderError{
			Provider: entities.StationDada,
			Method:   "CreateOrder",
			Message:  "quote has no deliveryNo",
		})
	}

	body := addAfterQueryRequest{DeliveryNo: quote.Token}
	if err := g.call(ctx, "CreateOrder", pathAddAfterQuery, body, nil); err != nil {
		return "", fmt.Errorf("dada create: %w", err)
	}
	return quote.Token, nil
}

func (g *Gateway) CancelOrder(ctx context.Context, req entities.ProviderCancelRequest) error {
	body := cancelRequest{
		OrderID:        req.OriginID,
		CancelReasonID: forcedCancelReasonID,
		CancelReason:   req.Reason,
	}

	if err := g.call(ctx, "CancelOrder", pathFormalCancel, body, nil); err != nil {
		return fmt.Errorf("dada cancel: %w", err)
	}
	return nil
}

func (g *Gateway) ListCancelReasons(ctx context.Context, _ entities.DeliveryStation) ([]entities.CancelReason, error) {
	var result []reasonResult
	if err := g.call(ctx, "ListCancelReasons", pathCancelReasons, struct{}{}, &result); err != nil {
		return nil, fmt.Errorf("dada cancel reasons: %w", err)
	}

	reasons := make([]entities.CancelReason, 0, len(result))
	for _, r := range result {
		reasons = append(reasons, entities.CancelReason{ID: r.ID, Reason: r.Reason})
	}
	return reasons, nil
}

func (g *Gateway) ListCities(ctx context.Context, _ entities.DeliveryStation) ([]entities.City, error) {
	var result []cityResult
	if err := g.call(ctx, "ListCities", pathCityList, struct{}{}, &result); err != nil {
		return nil, fmt.Errorf("dada cities: %w", err)
	}

	cities := make([]entities.City, 0, len(result))
	for _, c := range result {
		cities = append(cities, entities.City{Code: c.CityCode, Name: c.CityName})
	}
	return cities, nil
}

func (g *Gateway) GetBalance(ctx context.Context, _ entities.DeliveryStation) (*entities.Balance, error) {
	var result balanceResult
	body := balanceRequest{Category: balanceCategoryDelivery}
	if err := g.call(ctx, "GetBalance", pathBalance, body, &result); err != nil {
		return nil, fmt.Errorf("dada balance: %w", err)
	}
	return &entities.Balance{Amount: result.DeliverBalance}, nil
}

func (g *Gateway) GetOrderDetail(ctx context.Context, order entities.DeliveryOrder) (*entities.ProviderOrderDetail, error) {
	var result statusResult
	body := statusRequest{OrderID: order.OriginID}
	if err := g.call(ctx, "GetOrderDetail", pathOrderStatus, body, &result); err != nil {
		return nil, fmt.Errorf("dada order detail: %w", err)
	}

	status, ok := CanonicalStatus(result.StatusCode)
	if !ok {
		status = order.Status
	}

	return &entities.ProviderOrderDetail{
		ProviderOrderCode: order.ProviderOrderCode,
		Status:            status,
		StatusText:        result.StatusMsg,
		CourierName:       result.TransporterName,
		CourierPhone:      result.TransporterPhone,
		Fee:               result.DeliveryFee,
		DeductFee:         result.DeductFee,
		Distance:          result.Distance.Div(metersPerKM).Round(3),
		FinishCode:        result.FinishCode,
	}, nil
}

func (g *Gateway) call(ctx context.Context, method, path string, params, out any) error {
	return provider.Execute(ctx, g.timeout, entities.StationDada, method, func(ctx context.Context) error {
		req, err := g.envelope(params)
		if err != nil {
			return err
		}

		resp, err := g.client.R().
			SetContext(ctx).
			SetBody(req).
			Post(path)
		if err != nil {
			return err
		}

		if resp.StatusCode() != http.StatusOK {
			return &entities.ProviderError{
				Provider: entities.StationDada,
				Method:   method,
				Message:  fmt.Sprintf("unexpected http status %d", resp.StatusCode()),
			}
		}

		var r response
		if err := json.Unmarshal(resp.Body(), &r); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}

		if r.Status != "success" || r.Code != 0 {
			return &entities.ProviderError{
				Provider: entities.StationDada,
				Method:   method,
				Code:     r.Code,
				Message:  r.Msg,
			}
		}

		if out == nil || len(r.Result) == 0 || string(r.Result) == "null" {
			return nil
		}
		if err := json.Unmarshal(r.Result, out); err != nil {
			return fmt.Errorf("decode result: %w", err)
		}
		return nil
	})
}

func (g *Gateway) envelope(params any) (envelope, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return envelope{}, fmt.Errorf("encode body: %w", err)
	}

	e := envelope{
		AppKey:    g.cfg.AppKey,
		Body:      string(body),
		Format:    apiFormat,
		Timestamp: strconv.FormatInt(g.now().Unix(), 10),
		V:         apiVersion,
		SourceID:  g.cfg.SourceID,
	}
	e.Signature = sign(g.cfg.AppSecret, map[string]string{
		"app_key":   e.AppKey,
		"body":      e.Body,
		"format":    e.Format,
		"source_id": e.SourceID,
		"timestamp": e.Timestamp,
		"v":         e.V,
	})
	return e, nil
}
