package self

import (
	"context"

	"github.com/shopspring/decimal"
	"samecity/internal/entities"
	"samecity/internal/geo"
)

// Gateway backs stations whose own couriers carry the parcel. Nothing leaves
// the process: quotes echo the locally computed distance and orders have no
// provider code.
type Gateway struct{}

func New() *Gateway {
	return &Gateway{}
}

func (g *Gateway) QuotePrice(_ context.Context, req entities.ProviderQuoteRequest) (*entities.ProviderQuote, error) {
	distance := req.Distance
	if distance.IsZero() && !req.Destination.IsZero() {
		distance = geo.Distance(req.Station.Location, req.Destination)
	}

	return &entities.ProviderQuote{
		Request:  req,
		Fee:      decimal.Zero,
		Distance: distance,
	}, nil
}

func (g *Gateway) CreateOrder(context.Context, entities.ProviderQuote) (string, error) {
	return "", nil
}

func (g *Gateway) CancelOrder(context.Context, entities.ProviderCancelRequest) error {
	return nil
}

func (g *Gateway) ListCancelReasons(context.Context, entities.DeliveryStation) ([]entities.CancelReason, error) {
	return []entities.CancelReason{}, nil
}

func (g *Gateway) ListCities(context.Context, entities.DeliveryStation) ([]entities.City, error) {
	return []entities.City{}, nil
}

func (g *Gateway) GetBalance(context.Context, entities.DeliveryStation) (*entities.Balance, error) {
	return &entities.Balance{Amount: decimal.Zero}, nil
}

func (g *Gateway) GetOrderDetail(_ context.Context, order entities.DeliveryOrder) (*entities.ProviderOrderDetail, error) {
	return &entities.ProviderOrderDetail{
		Status:       order.Status,
		StatusText:   order.Status.String(),
		CourierName:  order.CourierName,
		CourierPhone: order.CourierPhone,
		Fee:          order.Fee,
		Distance:     order.Distance,
	}, nil
}
