//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"samecity/internal/gateway/geocoder"
	"samecity/internal/gateway/geocoder/cache"
	"samecity/internal/gateway/kafka/order_events"
	"samecity/internal/gateway/provider/dada"
	"samecity/internal/gateway/provider/registry"
	"samecity/internal/gateway/provider/self"
	"samecity/internal/gateway/provider/uu"
	"samecity/internal/handlers/rest/courier_claim_put"
	"samecity/internal/handlers/rest/delivery_cancel_post"
	"samecity/internal/handlers/rest/delivery_confirm_post"
	"samecity/internal/handlers/rest/delivery_create_post"
	"samecity/internal/handlers/rest/delivery_delete"
	"samecity/internal/handlers/rest/delivery_dispatch_post"
	"samecity/internal/handlers/rest/delivery_dispatch_put"
	"samecity/internal/handlers/rest/delivery_get"
	"samecity/internal/handlers/rest/delivery_provider_detail_get"
	"samecity/internal/handlers/rest/delivery_self_receive_post"
	"samecity/internal/handlers/rest/fee_config_put"
	"samecity/internal/handlers/rest/fee_quote_post"
	"samecity/internal/handlers/rest/merchant_config_get"
	"samecity/internal/handlers/rest/provider_notify_post"
	"samecity/internal/handlers/rest/station_balance_get"
	"samecity/internal/handlers/rest/station_cancel_reasons_get"
	"samecity/internal/handlers/rest/station_cities_get"
	"samecity/internal/handlers/rest/station_get"
	"samecity/internal/handlers/rest/station_post"
	"samecity/internal/handlers/rest/station_put"
	"samecity/internal/handlers/rest/stations_get"
	"samecity/internal/handlers/tasks/dispatch_failures"
	"samecity/internal/pkg/config"
	deliveryOrderRepo "samecity/internal/repository/deliveryorder"
	merchantRepo "samecity/internal/repository/merchant"
	orderStatusRepo "samecity/internal/repository/orderstatus"
	salesOrderRepo "samecity/internal/repository/salesorder"
	stationRepo "samecity/internal/repository/station"
	deliveryService "samecity/internal/service/delivery"
	feeService "samecity/internal/service/fee"
	stationService "samecity/internal/service/station"
	"samecity/pkg/background"
	"samecity/pkg/logger"
	"samecity/pkg/querier"
	"samecity/pkg/retrier/backoff_adapter"
	"samecity/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

type (
	DispatchFailureScanInterval time.Duration
)

type Application struct {
	ServiceFee        ServiceFee
	ServiceStation    ServiceStation
	ServiceDelivery   ServiceDelivery
	BackgroundWorkers *background.Worker
}

type ServiceFee interface {
	fee_quote_post.Service
}

type ServiceStation interface {
	station_post.Service
	station_put.Service
	station_get.Service
	stations_get.Service
	merchant_config_get.Service
	fee_config_put.Service
	courier_claim_put.Service
}

type ServiceDelivery interface {
	delivery_create_post.Service
	delivery_self_receive_post.Service
	delivery_dispatch_post.Service
	delivery_dispatch_put.Service
	delivery_cancel_post.Service
	delivery_confirm_post.Service
	delivery_delete.Service
	delivery_get.Service
	delivery_provider_detail_get.Service
	station_cancel_reasons_get.Service
	station_cities_get.Service
	station_balance_get.Service
	provider_notify_post.Service
}

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideDeliveryOrderRepository,
	provideSalesOrderRepository,
	provideStationRepository,
	provideMerchantRepository,
	provideOrderStatusRepository,
)

var deliverySet = wire.NewSet(
	provideGeocoderGateway,
	provideGeocoderCache,
	provideProviderRegistry,
	providePublisher,
	provideServiceDelivery,

	wire.Bind(new(cache.Store), new(*goredis.Client)),
	wire.Bind(new(cache.Geocoder), new(*geocoder.Gateway)),

	wire.Bind(new(deliveryService.DeliveryOrderRepository), new(*deliveryOrderRepo.Repository)),
	wire.Bind(new(deliveryService.SalesOrderRepository), new(*salesOrderRepo.Repository)),
	wire.Bind(new(deliveryService.StationRepository), new(*stationRepo.Repository)),
	wire.Bind(new(deliveryService.MerchantRepository), new(*merchantRepo.Repository)),
	wire.Bind(new(deliveryService.StatusLogRepository), new(*orderStatusRepo.Repository)),
	wire.Bind(new(deliveryService.ProviderRegistry), new(*registry.Registry)),
	wire.Bind(new(deliveryService.Geocoder), new(*cache.Cache)),
	wire.Bind(new(deliveryService.DeliveredPublisher), new(*order_events.Publisher)),
	wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
)

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		deliverySet,

		provideServiceFee,
		provideServiceStation,

		provideDispatchFailureScanInterval,
		provideDispatchFailuresTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceFee), new(*feeService.Fee)),
		wire.Bind(new(ServiceStation), new(*stationService.Station)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),

		wire.Bind(new(feeService.StationRepository), new(*stationRepo.Repository)),
		wire.Bind(new(feeService.MerchantRepository), new(*merchantRepo.Repository)),
		wire.Bind(new(feeService.Geocoder), new(*cache.Cache)),

		wire.Bind(new(stationService.Repository), new(*stationRepo.Repository)),
		wire.Bind(new(stationService.MerchantRepository), new(*merchantRepo.Repository)),
		wire.Bind(new(stationService.TxManager), new(*tx.Manager)),

		wire.Bind(new(dispatch_failures.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	DeliveryService *deliveryService.Delivery
}

// InitializeKafkaWorkerApp wires the ready-to-ship consumer (cmd/worker-order-ready).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		deliverySet,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryOrderRepository(querier *querier.Querier) *deliveryOrderRepo.Repository {
	return deliveryOrderRepo.New(querier)
}

func provideSalesOrderRepository(querier *querier.Querier) *salesOrderRepo.Repository {
	return salesOrderRepo.New(querier)
}

func provideStationRepository(querier *querier.Querier) *stationRepo.Repository {
	return stationRepo.New(querier)
}

func provideMerchantRepository(querier *querier.Querier) *merchantRepo.Repository {
	return merchantRepo.New(querier)
}

func provideOrderStatusRepository(querier *querier.Querier) *orderStatusRepo.Repository {
	return orderStatusRepo.New(querier)
}

func provideGeocoderGateway(cfg *config.Config) *geocoder.Gateway {
	return geocoder.New(cfg.Geocoder, backoff_adapter.New(geocoder.RetryConfig()))
}

func provideGeocoderCache(
	log logger.Logger,
	store cache.Store,
	upstream cache.Geocoder,
	cfg *config.Config,
) *cache.Cache {
	return cache.New(log, store, upstream, cfg.Geocoder.CacheTTL)
}

func provideProviderRegistry(cfg *config.Config) *registry.Registry {
	return registry.New(
		self.New(),
		dada.New(cfg.Providers.Dada, cfg.Providers.RequestTimeout),
		uu.New(cfg.Providers.UU, cfg.Providers.RequestTimeout),
	)
}

func providePublisher(producer sarama.SyncProducer, cfg *config.Config) *order_events.Publisher {
	return order_events.New(producer, cfg.Kafka.Topics.OrderDelivered)
}

func provideServiceDelivery(
	deliveryOrders deliveryService.DeliveryOrderRepository,
	salesOrders deliveryService.SalesOrderRepository,
	stations deliveryService.StationRepository,
	merchants deliveryService.MerchantRepository,
	statusLogs deliveryService.StatusLogRepository,
	providers deliveryService.ProviderRegistry,
	geocoder deliveryService.Geocoder,
	publisher deliveryService.DeliveredPublisher,
	txManager deliveryService.TxManager,
	log logger.Logger,
) *deliveryService.Delivery {
	return deliveryService.New(
		deliveryOrders,
		salesOrders,
		stations,
		merchants,
		statusLogs,
		providers,
		geocoder,
		publisher,
		txManager,
		log,
	)
}

func provideServiceFee(
	stations feeService.StationRepository,
	merchants feeService.MerchantRepository,
	geocoder feeService.Geocoder,
) *feeService.Fee {
	return feeService.New(stations, merchants, geocoder)
}

func provideServiceStation(
	repository stationService.Repository,
	merchants stationService.MerchantRepository,
	txManager stationService.TxManager,
) *stationService.Station {
	return stationService.New(repository, merchants, txManager)
}

func provideDispatchFailureScanInterval(cfg *config.Config) DispatchFailureScanInterval {
	return DispatchFailureScanInterval(cfg.Tasks.DispatchFailureScanInterval)
}

func provideDispatchFailuresTask(
	log logger.Logger,
	deliveryService dispatch_failures.Service,
	interval DispatchFailureScanInterval,
) *dispatch_failures.DispatchFailures {
	return dispatch_failures.NewDispatchFailures(log, deliveryService, time.Duration(interval))
}

func provideTaskList(
	dispatchFailuresTask *dispatch_failures.DispatchFailures,
) []background.Task {
	return []background.Task{
		dispatchFailuresTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
