//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"fulfillment/internal/pkg/config"
	"fulfillment/internal/pkg/factory/notification_template"
	courierService "fulfillment/internal/service/courier"
	"fulfillment/internal/service/notifier"
	orderService "fulfillment/internal/service/order"
	"fulfillment/internal/service/reputation"
	"fulfillment/internal/service/verification"
	"fulfillment/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	producer sarama.SyncProducer,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCourierRepository,
		provideOrderRepository,
		provideOutboxRepository,
		providePaymentRepository,
		provideRatingRepository,
		provideReputationRepository,
		provideNotificationRepository,

		provideClock,
		provideRetrier,
		provideEscrowConfig,

		provideCatalogGateway,
		provideTransitionsGateway,
		provideNotificationsGateway,
		notification_template.New,
		verification.New,

		provideServiceCourier,
		provideEscrowLedger,
		provideMatcher,
		provideServiceOrder,
		provideServiceReputation,
		provideServiceNotifier,
		provideOutboxRelay,

		provideOutboxRelayTask,
		provideCourierAvailabilityTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceReputation), new(*reputation.Service)),
		wire.Bind(new(ServiceNotifier), new(*notifier.Notifier)),
	)
	return &Application{}, nil
}

// InitializeNotificationWorkerApp для Kafka воркера (cmd/worker-notifications)
func InitializeNotificationWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	cfg *config.Config,
) (*NotificationWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideNotificationRepository,
		provideClock,
		provideNotificationsGateway,
		notification_template.New,
		provideServiceNotifier,

		wire.Struct(new(NotificationWorkerApp), "*"),
	)
	return &NotificationWorkerApp{}, nil
}
