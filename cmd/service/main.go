package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "samecity/internal/app"
	"samecity/internal/gateway/provider/dada"
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
	"samecity/internal/handlers/rest/healthcheck_head"
	"samecity/internal/handlers/rest/merchant_config_get"
	"samecity/internal/handlers/rest/ping_get"
	"samecity/internal/handlers/rest/provider_notify_post"
	"samecity/internal/handlers/rest/station_balance_get"
	"samecity/internal/handlers/rest/station_cancel_reasons_get"
	"samecity/internal/handlers/rest/station_cities_get"
	"samecity/internal/handlers/rest/station_get"
	"samecity/internal/handlers/rest/station_post"
	"samecity/internal/handlers/rest/station_put"
	"samecity/internal/handlers/rest/stations_get"
	"samecity/internal/pkg/config"
	"samecity/internal/pkg/dotenv"
	"samecity/internal/pkg/kafka"
	metrics_system "samecity/internal/pkg/metrics"
	"samecity/internal/pkg/middlewares/graceful_shutdown"
	"samecity/internal/pkg/middlewares/metrics"
	"samecity/internal/pkg/middlewares/rate_limiter"
	"samecity/internal/pkg/middlewares/timeout"
	"samecity/internal/pkg/postgres"
	"samecity/internal/pkg/redis"
	"samecity/pkg/logger"
	"samecity/pkg/logger/zap_adapter"
	"samecity/pkg/token_bucket"
)

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Server.LogLevel)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting samecity delivery service")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdown contexts derive from context.Background on purpose
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	redisClient, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close redis client",
				logger.NewField("error", err),
			)
		}
	}()

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx feeds BaseContext and outlives SIGTERM; it is cancelled only
	// after server.Shutdown() so in-flight requests can finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr: fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg, []healthcheck_head.Probe{
			pool.Ping,
			func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		}),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// ctx is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *application.Application,
	cfg *config.Config,
	probes []healthcheck_head.Probe,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(log, cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, probes...)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	merchants := router.PathPrefix("/merchants/{mer_id:[0-9]+}").Subrouter()

	merchants.Handle("/fee/quote", fee_quote_post.New(log, app.ServiceFee)).Methods("POST")

	merchants.Handle("/stations", stations_get.New(log, app.ServiceStation)).Methods("GET")
	merchants.Handle("/stations", station_post.New(log, app.ServiceStation)).Methods("POST")
	merchants.Handle("/stations/{station_id:[0-9]+}", station_get.New(log, app.ServiceStation)).Methods("GET")
	merchants.Handle("/stations/{station_id:[0-9]+}", station_put.New(log, app.ServiceStation)).Methods("PUT")
	merchants.Handle("/stations/{station_id:[0-9]+}/cancel-reasons", station_cancel_reasons_get.New(log, app.ServiceDelivery)).Methods("GET")
	merchants.Handle("/stations/{station_id:[0-9]+}/cities", station_cities_get.New(log, app.ServiceDelivery)).Methods("GET")
	merchants.Handle("/stations/{station_id:[0-9]+}/balance", station_balance_get.New(log, app.ServiceDelivery)).Methods("GET")

	merchants.Handle("/delivery-config", merchant_config_get.New(log, app.ServiceStation)).Methods("GET")
	merchants.Handle("/delivery-config/fee", fee_config_put.New(log, app.ServiceStation)).Methods("PUT")
	merchants.Handle("/delivery-config/courier-claim", courier_claim_put.New(log, app.ServiceStation)).Methods("PUT")

	merchants.Handle("/orders/{order_id:[0-9]+}/delivery", delivery_get.New(log, app.ServiceDelivery)).Methods("GET")
	merchants.Handle("/orders/{order_id:[0-9]+}/delivery", delivery_delete.New(log, app.ServiceDelivery)).Methods("DELETE")
	merchants.Handle("/orders/{order_id:[0-9]+}/delivery/dispatch", delivery_dispatch_post.New(log, app.ServiceDelivery)).Methods("POST")
	merchants.Handle("/orders/{order_id:[0-9]+}/delivery/dispatch", delivery_dispatch_put.New(log, app.ServiceDelivery)).Methods("PUT")
	merchants.Handle("/orders/{order_id:[0-9]+}/delivery/cancel", delivery_cancel_post.New(log, app.ServiceDelivery)).Methods("POST")
	merchants.Handle("/orders/{order_id:[0-9]+}/delivery/confirm", delivery_confirm_post.New(log, app.ServiceDelivery)).Methods("POST")
	merchants.Handle("/orders/{order_id:[0-9]+}/delivery/provider-detail", delivery_provider_detail_get.New(log, app.ServiceDelivery)).Methods("GET")

	router.Handle("/orders/{order_id:[0-9]+}/delivery", delivery_create_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/orders/{order_id:[0-9]+}/delivery/self-receive", delivery_self_receive_post.New(log, app.ServiceDelivery)).Methods("POST")

	notify := router.PathPrefix("/delivery/notify").Subrouter()
	notify.Use(rate_limiter.Middleware(
		log,
		cfg.Server.RateLimiterQPS,
		token_bucket.NewKeyed(cfg.Server.RateLimiterBurst, float64(cfg.Server.RateLimiterQPS)),
		rate_limiter.ByRouteVar("provider"),
	))
	notify.Handle("/{provider}", provider_notify_post.New(log, app.ServiceDelivery, map[string]provider_notify_post.Parser{
		"dada": dada.Notifier{},
		"uu":   uu.NewNotifier(cfg.Providers.UU.AppKey),
	})).Methods("POST")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
