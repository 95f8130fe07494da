//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"samecity/internal/entities"
	"samecity/internal/geo"
)

// Provider is one courier backend: merchant self-delivery or a third-party
// courier API.
type Provider interface {
	QuotePrice(ctx context.Context, req entities.ProviderQuoteRequest) (*entities.ProviderQuote, error)
	CreateOrder(ctx context.Context, quote entities.ProviderQuote) (string, error)
	CancelOrder(ctx context.Context, req entities.ProviderCancelRequest) error
	ListCancelReasons(ctx context.Context, station entities.DeliveryStation) ([]entities.CancelReason, error)
	ListCities(ctx context.Context, station entities.DeliveryStation) ([]entities.City, error)
	GetBalance(ctx context.Context, station entities.DeliveryStation) (*entities.Balance, error)
	GetOrderDetail(ctx context.Context, order entities.DeliveryOrder) (*entities.ProviderOrderDetail, error)
}

type ProviderRegistry interface {
	Get(stationType entities.StationType) Provider
}

type DeliveryOrderRepository interface {
	Create(ctx context.Context, order entities.DeliveryOrderModify) (*entities.DeliveryOrder, error)
	Update(ctx context.Context, order entities.DeliveryOrderModify) (*entities.DeliveryOrder, error)
	Delete(ctx context.Context, id int64) error
	GetByOrderID(ctx context.Context, orderID int64) (*entities.DeliveryOrder, error)
	GetByOrderIDForUpdate(ctx context.Context, orderID int64) (*entities.DeliveryOrder, error)
	GetByOriginIDForUpdate(ctx context.Context, originID string) (*entities.DeliveryOrder, error)
}

type SalesOrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.SalesOrder, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.SalesOrder, error)
	Update(ctx context.Context, order entities.SalesOrderModify) (*entities.SalesOrder, error)
	CountDispatchFailures(ctx context.Context) (int64, error)
}

type StationRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.DeliveryStation, error)
}

type MerchantRepository interface {
	GetConfig(ctx context.Context, merID int64) (*entities.MerchantConfig, error)
}

type StatusLogRepository interface {
	Create(ctx context.Context, log entities.OrderStatusLog) (*entities.OrderStatusLog, error)
}

type Geocoder interface {
	Resolve(ctx context.Context, address geo.Address) (geo.Point, error)
}

type DeliveredPublisher interface {
	PublishDelivered(ctx context.Context, event entities.DeliveredEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
