package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	defaultPlatformFeePercent = 5
	defaultCourierFlatFee     = 50
	defaultOutboxBatchSize    = 100
	defaultRedisChannelPrefix = "notifications"
)

type (
	Tasks struct {
		OutboxRelayInterval         time.Duration
		OutboxRelayBatchSize        int
		CourierAvailabilityInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host           string
		Port           string
		User           string
		Password       string
		DBName         string
		SSLMode        string
		MaxConns       int32
		MigrateOnStart bool
	}

	CatalogService struct {
		GRPCHost       string
		RequestTimeout time.Duration
	}

	Auth struct {
		JWTSecret string
		Issuer    string
	}

	Escrow struct {
		PlatformFeePercent decimal.Decimal
		CourierFlatFee     decimal.Decimal
	}

	Redis struct {
		Addr          string
		Password      string
		DB            int
		ChannelPrefix string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
		ProducerRetryMax          int
	}

	KafkaHandlers struct {
		OrderTransitioned OrderTransitioned
	}

	OrderTransitioned struct {
		ProcessTimeout time.Duration
	}

	Log struct {
		Level string
	}

	Config struct {
		Tasks          Tasks
		Server         HTTPServer
		Database       Database
		CatalogService CatalogService
		Auth           Auth
		Escrow         Escrow
		Redis          Redis
		Kafka          Kafka
		Log            Log
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

func loadFromEnv() (*Config, error) {
	outboxInterval, err := osGetEnvDuration("BACKGROUND_OUTBOX_RELAY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	outboxBatchSize, err := osGetInt("BACKGROUND_OUTBOX_RELAY_BATCH_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if outboxBatchSize == 0 {
		outboxBatchSize = defaultOutboxBatchSize
	}

	courierInterval, err := osGetEnvDuration("BACKGROUND_COURIER_AVAILABILITY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaProducerRetryMax, err := osGetInt("KAFKA_SARAMA_PRODUCER_RETRY_MAX")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderTransitionedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_TRANSITIONED_PROCESS_TIMEOUT")
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

	maxConns, err := osGetInt("POSTGRES_MAX_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrateOnStart, err := osGetBool("POSTGRES_MIGRATE_ON_START")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	catalogTimeout, err := osGetEnvDuration("CATALOG_SERVICE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	platformFee, err := osGetDecimal("ESCROW_PLATFORM_FEE_PERCENT", decimal.NewFromInt(defaultPlatformFeePercent))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	courierFee, err := osGetDecimal("ESCROW_COURIER_FLAT_FEE", decimal.NewFromInt(defaultCourierFlatFee))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisPrefix := os.Getenv("REDIS_CHANNEL_PREFIX")
	if redisPrefix == "" {
		redisPrefix = defaultRedisChannelPrefix
	}

	return &Config{
		Tasks: Tasks{
			OutboxRelayInterval:         outboxInterval,
			OutboxRelayBatchSize:        outboxBatchSize,
			CourierAvailabilityInterval: courierInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:           os.Getenv("POSTGRES_HOST"),
			Port:           os.Getenv("POSTGRES_PORT"),
			User:           os.Getenv("POSTGRES_USER"),
			Password:       os.Getenv("POSTGRES_PASSWORD"),
			DBName:         os.Getenv("POSTGRES_DB"),
			SSLMode:        os.Getenv("POSTGRES_SSLMODE"),
			MaxConns:       int32(maxConns), //nolint:gosec // значение из env, переполнение не ожидается
			MigrateOnStart: migrateOnStart,
		},
		CatalogService: CatalogService{
			GRPCHost:       os.Getenv("CATALOG_SERVICE_GRPC_HOST"),
			RequestTimeout: catalogTimeout,
		},
		Auth: Auth{
			JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
			Issuer:    os.Getenv("AUTH_JWT_ISSUER"),
		},
		Escrow: Escrow{
			PlatformFeePercent: platformFee,
			CourierFlatFee:     courierFee,
		},
		Redis: Redis{
			Addr:          os.Getenv("REDIS_ADDR"),
			Password:      os.Getenv("REDIS_PASSWORD"),
			DB:            redisDB,
			ChannelPrefix: redisPrefix,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
				ProducerRetryMax:          saramaProducerRetryMax,
			},
			Handlers: KafkaHandlers{
				OrderTransitioned: OrderTransitioned{
					ProcessTimeout: orderTransitionedTimeout,
				},
			},
		},
		Log: Log{
			Level: os.Getenv("LOG_LEVEL"),
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

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	if cfg.Database.MaxConns < 0 {
		return errors.New("POSTGRES_MAX_CONNS must not be negative")
	}

	if cfg.Tasks.OutboxRelayInterval == time.Duration(0) {
		return errors.New("BACKGROUND_OUTBOX_RELAY_INTERVAL is required")
	}
	if cfg.Tasks.OutboxRelayBatchSize < 0 {
		return errors.New("BACKGROUND_OUTBOX_RELAY_BATCH_SIZE must not be negative")
	}
	if cfg.Tasks.CourierAvailabilityInterval == time.Duration(0) {
		return errors.New("BACKGROUND_COURIER_AVAILABILITY_INTERVAL is required")
	}

	if cfg.CatalogService.GRPCHost == "" {
		return errors.New("CATALOG_SERVICE_GRPC_HOST is required")
	}
	if cfg.CatalogService.RequestTimeout == time.Duration(0) {
		return errors.New("CATALOG_SERVICE_REQUEST_TIMEOUT is required")
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}

	if cfg.Escrow.PlatformFeePercent.IsNegative() || cfg.Escrow.PlatformFeePercent.GreaterThan(decimal.NewFromInt(100)) {
		return errors.New("ESCROW_PLATFORM_FEE_PERCENT must be within [0, 100]")
	}
	if cfg.Escrow.CourierFlatFee.IsNegative() {
		return errors.New("ESCROW_COURIER_FLAT_FEE must not be negative")
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
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

	if cfg.Kafka.Handlers.OrderTransitioned.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_TRANSITIONED_PROCESS_TIMEOUT is required")
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

func osGetDecimal(s string, fallback decimal.Decimal) (decimal.Decimal, error) {
	val := os.Getenv(s)
	if val == "" {
		return fallback, nil
	}

	res, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
