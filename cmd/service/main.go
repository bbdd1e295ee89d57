package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "fulfillment/internal/app"
	"fulfillment/internal/handlers/rest/courier_get"
	"fulfillment/internal/handlers/rest/courier_post"
	"fulfillment/internal/handlers/rest/courier_put"
	"fulfillment/internal/handlers/rest/couriers_get"
	"fulfillment/internal/handlers/rest/couriers_leaderboard_get"
	"fulfillment/internal/handlers/rest/delivery_post"
	"fulfillment/internal/handlers/rest/healthcheck_head"
	"fulfillment/internal/handlers/rest/notification_read_post"
	"fulfillment/internal/handlers/rest/notifications_get"
	"fulfillment/internal/handlers/rest/order_assign_post"
	"fulfillment/internal/handlers/rest/order_candidates_get"
	"fulfillment/internal/handlers/rest/order_delivery_post"
	"fulfillment/internal/handlers/rest/order_fail_post"
	"fulfillment/internal/handlers/rest/order_get"
	"fulfillment/internal/handlers/rest/order_payment_get"
	"fulfillment/internal/handlers/rest/order_pickup_post"
	"fulfillment/internal/handlers/rest/order_post"
	"fulfillment/internal/handlers/rest/orders_get"
	"fulfillment/internal/handlers/rest/ping_get"
	"fulfillment/internal/handlers/rest/rating_post"
	"fulfillment/internal/handlers/rest/rating_put"
	"fulfillment/internal/pkg/config"
	"fulfillment/internal/pkg/dotenv"
	"fulfillment/internal/pkg/grpcclient"
	"fulfillment/internal/pkg/kafka"
	metrics_system "fulfillment/internal/pkg/metrics"
	"fulfillment/internal/pkg/middlewares/auth"
	"fulfillment/internal/pkg/middlewares/graceful_shutdown"
	"fulfillment/internal/pkg/middlewares/metrics"
	"fulfillment/internal/pkg/middlewares/rate_limiter"
	"fulfillment/internal/pkg/middlewares/request_scope"
	"fulfillment/internal/pkg/postgres"
	"fulfillment/internal/pkg/redis"
	"fulfillment/pkg/clock"
	"fulfillment/pkg/logger"
	"fulfillment/pkg/logger/zap_adapter"
	"fulfillment/pkg/token_bucket"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env читается до логгера, иначе LOG_LEVEL из файла не применится
	envLoaded, envErr := dotenv.Load()

	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.WithLevel(os.Getenv("LOG_LEVEL")))
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

	mainLog.Info("starting fulfillment service")

	if envErr != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", envErr))
		return
	}
	if !envLoaded {
		mainLog.Warn("No .env file found, using system environment variables")
	}
	if err := dotenv.OverridePort(os.Args[1:]); err != nil {
		mainLog.Error("parse command line", logger.NewField("error", err))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod        = 15 * time.Second
		shutdownHardPeriod    = 3 * time.Second
		readinessDrainDelay   = 5 * time.Second
		systemMetricsInterval = 5 * time.Second
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

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	conn, err := grpcclient.NewConnClient(ctx, log, &cfg.CatalogService)
	if err != nil {
		return fmt.Errorf("gRPC client: %w", err)
	}
	defer func() {
		err := conn.Close()
		if err != nil {
			runLog.Error("failed to close gRPC connection",
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

	readiness := []healthcheck_head.Check{
		pool.Ping,
		func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, conn, producer, redisClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, systemMetricsInterval)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, readiness, businessApp, verifier, cfg.Server, readinessDrainDelay),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, readiness),
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
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	// фоновые задачи останавливаются по отмене ctx, дожидаемся последней итерации
	businessApp.BackgroundWorkers.Wait()

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
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
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	readiness []healthcheck_head.Check,
	app *application.Application,
	verifier *auth.Verifier,
	cfg config.HTTPServer,
	retryAfter time.Duration,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx, retryAfter))

	router.Use(request_scope.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, readiness...)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log, clock.New())).Methods("GET")

	api := router.NewRoute().Subrouter()
	api.Use(auth.Middleware(log, verifier))

	api.Handle("/orders", order_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/deliveries", delivery_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/orders/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/orders/{id}/candidates", order_candidates_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/orders/{id}/assign", order_assign_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/orders/{id}/pickup", order_pickup_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/orders/{id}/delivery", order_delivery_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/orders/{id}/fail", order_fail_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/orders/{id}/payment", order_payment_get.New(log, app.ServiceOrder)).Methods("GET")

	api.Handle("/ratings", rating_post.New(log, app.ServiceReputation)).Methods("POST")
	api.Handle("/ratings/{id}", rating_put.New(log, app.ServiceReputation)).Methods("PUT")

	api.Handle("/notifications", notifications_get.New(log, app.ServiceNotifier)).Methods("GET")
	api.Handle("/notifications/{id}/read", notification_read_post.New(log, app.ServiceNotifier)).Methods("POST")

	api.Handle("/couriers/leaderboard", couriers_leaderboard_get.New(log, app.ServiceCourier)).Methods("GET")
	api.Handle("/couriers", couriers_get.New(log, app.ServiceCourier)).Methods("GET")
	api.Handle("/courier/{id}", courier_get.New(log, app.ServiceCourier)).Methods("GET")
	api.Handle("/courier", courier_post.New(log, app.ServiceCourier)).Methods("POST")
	api.Handle("/courier/{id}", courier_put.New(log, app.ServiceCourier)).Methods("PUT")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, readiness []healthcheck_head.Check) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, readiness...)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
