package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		DispatchFailureScanInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		LogLevel         string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // webhook rate limiter refill per second
		RateLimiterBurst int           // webhook rate limiter capacity
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Geocoder struct {
		BaseURL  string
		Key      string
		Timeout  time.Duration
		CacheTTL time.Duration
	}

	Dada struct {
		BaseURL     string
		AppKey      string
		AppSecret   string
		SourceID    string
		CallbackURL string
	}

	UU struct {
		BaseURL     string
		AppID       string
		AppKey      string
		OpenID      string
		CallbackURL string
	}

	Providers struct {
		RequestTimeout time.Duration
		Dada           Dada
		UU             UU
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		ConsumerGroup   string
		Topics          KafkaTopics
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	KafkaTopics struct {
		OrderReadyToShip string
		OrderDelivered   string
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderReadyToShip OrderReadyToShip
	}

	OrderReadyToShip struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks     Tasks
		Server    HTTPServer
		Database  Database
		Redis     Redis
		Geocoder  Geocoder
		Providers Providers
		Kafka     Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadDatabase reads only the POSTGRES_* variables; used by cmd/migrate.
func LoadDatabase() (*Database, error) {
	db := databaseFromEnv()
	if err := validateDatabase(&db); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return &db, nil
}

func databaseFromEnv() Database {
	return Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func loadFromEnv() (*Config, error) {
	dispatchFailureInterval, err := osGetEnvDuration("BACKGROUND_DISPATCH_FAILURE_SCAN_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	readyToShipTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_READY_TO_SHIP_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	geocoderTimeout, err := osGetEnvDuration("GEOCODER_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	geocoderCacheTTL, err := osGetEnvDuration("GEOCODER_CACHE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	providerTimeout, err := osGetEnvDuration("PROVIDER_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			DispatchFailureScanInterval: dispatchFailureInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			LogLevel:         os.Getenv("LOG_LEVEL"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: databaseFromEnv(),
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Geocoder: Geocoder{
			BaseURL:  os.Getenv("GEOCODER_BASE_URL"),
			Key:      os.Getenv("GEOCODER_KEY"),
			Timeout:  geocoderTimeout,
			CacheTTL: geocoderCacheTTL,
		},
		Providers: Providers{
			RequestTimeout: providerTimeout,
			Dada: Dada{
				BaseURL:     os.Getenv("DADA_BASE_URL"),
				AppKey:      os.Getenv("DADA_APP_KEY"),
				AppSecret:   os.Getenv("DADA_APP_SECRET"),
				SourceID:    os.Getenv("DADA_SOURCE_ID"),
				CallbackURL: os.Getenv("DADA_CALLBACK_URL"),
			},
			UU: UU{
				BaseURL:     os.Getenv("UU_BASE_URL"),
				AppID:       os.Getenv("UU_APP_ID"),
				AppKey:      os.Getenv("UU_APP_KEY"),
				OpenID:      os.Getenv("UU_OPEN_ID"),
				CallbackURL: os.Getenv("UU_CALLBACK_URL"),
			},
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Topics: KafkaTopics{
				OrderReadyToShip: os.Getenv("KAFKA_TOPIC_ORDER_READY_TO_SHIP"),
				OrderDelivered:   os.Getenv("KAFKA_TOPIC_ORDER_DELIVERED"),
			},
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderReadyToShip: OrderReadyToShip{
					ProcessTimeout: readyToShipTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Geocoder.BaseURL == "" {
		return errors.New("GEOCODER_BASE_URL is required")
	}
	if cfg.Geocoder.Timeout == time.Duration(0) {
		return errors.New("GEOCODER_TIMEOUT is required")
	}

	if cfg.Providers.RequestTimeout == time.Duration(0) {
		return errors.New("PROVIDER_REQUEST_TIMEOUT is required")
	}
	if cfg.Providers.Dada.BaseURL == "" {
		return errors.New("DADA_BASE_URL is required")
	}
	if cfg.Providers.UU.BaseURL == "" {
		return errors.New("UU_BASE_URL is required")
	}

	if cfg.Tasks.DispatchFailureScanInterval == time.Duration(0) {
		return errors.New("BACKGROUND_DISPATCH_FAILURE_SCAN_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topics.OrderReadyToShip == "" {
		return errors.New("KAFKA_TOPIC_ORDER_READY_TO_SHIP is required")
	}
	if cfg.Kafka.Topics.OrderDelivered == "" {
		return errors.New("KAFKA_TOPIC_ORDER_DELIVERED is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderReadyToShip.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_READY_TO_SHIP_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func validateDatabase(db *Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}
