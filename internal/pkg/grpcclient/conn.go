package grpcclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/config"
	"fulfillment/internal/pkg/middlewares/request_scope"
	"fulfillment/pkg/logger"
	retrierconfig "fulfillment/pkg/retrier"
	"fulfillment/pkg/retrier/backoff_adapter"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	keepaliveTime    = 5 * time.Minute
	keepaliveTimeout = 3 * time.Second

	healthInitialInterval = time.Second
	healthMaxInterval     = 30 * time.Second
	healthMaxElapsedTime  = 2 * time.Minute
	healthRandomization   = 0.5
	healthMultiplier      = 2

	requestIDMetadataKey = "x-request-id"
)

// NewConnClient соединение с каталогом. Возвращается только после SERVING от health сервиса.
func NewConnClient(ctx context.Context, log logger.Logger, cfg *config.CatalogService) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(
		cfg.GRPCHost,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:    keepaliveTime,
			Timeout: keepaliveTimeout,
		}),
		grpc.WithUnaryInterceptor(propagateRequestID),
	)
	if err != nil {
		return nil, fmt.Errorf("create gRPC client: %w", err)
	}

	grpcLog := log.With(
		logger.NewField("component", "grpc-client"),
		logger.NewField("host", cfg.GRPCHost),
	)

	if err := waitForServing(ctx, grpcLog, healthpb.NewHealthClient(conn)); err != nil {
		return nil, errors.Join(err, conn.Close())
	}
	return conn, nil
}

// propagateRequestID передает X-Request-ID входящего HTTP запроса в метаданные вызова.
func propagateRequestID(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if requestID, ok := request_scope.RequestID(ctx); ok {
		ctx = metadata.AppendToOutgoingContext(ctx, requestIDMetadataKey, requestID)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func waitForServing(ctx context.Context, log logger.Logger, client healthpb.HealthClient) error {
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: healthInitialInterval,
		MaxInterval:     healthMaxInterval,
		MaxElapsedTime:  healthMaxElapsedTime,
		Randomization:   healthRandomization,
		Multiplier:      healthMultiplier,
		OnRetry: func(err error, attempt int, wait time.Duration) {
			log.Warn("catalog is not serving yet",
				logger.NewField("attempt", attempt),
				logger.NewField("next_try_in", wait.String()),
				logger.NewField("error", err),
			)
		},
	})

	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
		if status.Code(err) == codes.Unimplemented {
			// каталог без health сервиса, соединение живое
			return nil
		}
		if err != nil {
			return err
		}
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			return fmt.Errorf("catalog health status %s", resp.GetStatus())
		}
		return nil
	})
	if err != nil {
		log.Error("catalog connection failed after retries", logger.NewField("error", err))
		return fmt.Errorf("gRPC connection: %w", err)
	}

	log.Info("catalog connection established")
	return nil
}
