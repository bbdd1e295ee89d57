package app

import (
	"context"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/gateway/grpc/catalog"
	"fulfillment/internal/gateway/kafka/transitions"
	"fulfillment/internal/gateway/redis/notifications"
	"fulfillment/internal/handlers/tasks/courier_availability"
	"fulfillment/internal/handlers/tasks/outbox_relay"
	"fulfillment/internal/pkg/config"
	"fulfillment/internal/pkg/factory/notification_template"
	courierRepo "fulfillment/internal/repository/courier"
	notificationRepo "fulfillment/internal/repository/notification"
	orderRepo "fulfillment/internal/repository/order"
	outboxRepo "fulfillment/internal/repository/outbox"
	paymentRepo "fulfillment/internal/repository/payment"
	ratingRepo "fulfillment/internal/repository/rating"
	reputationRepo "fulfillment/internal/repository/reputation"
	courierService "fulfillment/internal/service/courier"
	"fulfillment/internal/service/escrow"
	"fulfillment/internal/service/matcher"
	"fulfillment/internal/service/notifier"
	orderService "fulfillment/internal/service/order"
	outboxService "fulfillment/internal/service/outbox"
	"fulfillment/internal/service/reputation"
	"fulfillment/internal/service/verification"
	"fulfillment/pkg/background"
	"fulfillment/pkg/clock"
	"fulfillment/pkg/logger"
	"fulfillment/pkg/querier"
	retrierconfig "fulfillment/pkg/retrier"
	"fulfillment/pkg/retrier/backoff_adapter"
	"fulfillment/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
)

// повтор при проигранной гонке условной записи: ровно один, на свежем состоянии
const (
	conflictRetryInitialInterval = 10 * time.Millisecond
	conflictRetryMaxInterval     = 100 * time.Millisecond
	conflictRetryMaxElapsedTime  = time.Second
	conflictRetryRandomization   = 0.5
	conflictRetryMultiplier      = 2.0
	conflictRetryMaxRetries      = 1
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool, tx.WithConflictError(entities.ErrConcurrentModification))
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideClock() clock.Real {
	return clock.New()
}

func provideRetrier(log logger.Logger) *backoff_adapter.Retrier {
	retryLog := log.With(logger.NewField("component", "conflict_retrier"))

	return backoff_adapter.New(retrierconfig.Config{
		InitialInterval: conflictRetryInitialInterval,
		MaxInterval:     conflictRetryMaxInterval,
		MaxElapsedTime:  conflictRetryMaxElapsedTime,
		Randomization:   conflictRetryRandomization,
		Multiplier:      conflictRetryMultiplier,
		MaxRetries:      conflictRetryMaxRetries,
		ShouldRetry:     retrierconfig.RetryOn(entities.ErrConcurrentModification),
		OnRetry: func(err error, attempt int, wait time.Duration) {
			retryLog.Warn("conditional write lost the race, retrying on fresh state",
				logger.NewField("attempt", attempt),
				logger.NewField("wait", wait.String()),
				logger.NewField("error", err),
			)
		},
	})
}

func provideEscrowConfig(cfg *config.Config) escrow.Config {
	return escrow.Config{
		PlatformFeePercent: cfg.Escrow.PlatformFeePercent,
		CourierFlatFee:     cfg.Escrow.CourierFlatFee,
	}
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideRatingRepository(querier *querier.Querier) *ratingRepo.Repository {
	return ratingRepo.New(querier)
}

func provideReputationRepository(querier *querier.Querier) *reputationRepo.Repository {
	return reputationRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideCatalogGateway(conn *grpc.ClientConn, cfg *config.Config) *catalog.CatalogGateway {
	return catalog.New(conn, cfg.CatalogService.RequestTimeout)
}

func provideTransitionsGateway(producer sarama.SyncProducer, cfg *config.Config) *transitions.Gateway {
	return transitions.New(producer, cfg.Kafka.Topic)
}

func provideNotificationsGateway(client *goredis.Client, cfg *config.Config) *notifications.Gateway {
	return notifications.New(client, cfg.Redis.ChannelPrefix)
}

func provideServiceCourier(
	repository *courierRepo.Repository,
	txManager *tx.Manager,
) *courierService.Courier {
	return courierService.New(repository, txManager)
}

func provideEscrowLedger(repository *paymentRepo.Repository, clock clock.Real, cfg escrow.Config) *escrow.Ledger {
	return escrow.New(repository, clock, cfg)
}

func provideMatcher(couriers *courierRepo.Repository) *matcher.Matcher {
	return matcher.New(couriers)
}

func provideServiceOrder(
	orders *orderRepo.Repository,
	outbox *outboxRepo.Repository,
	ledger *escrow.Ledger,
	courierMatcher *matcher.Matcher,
	codes *verification.Generator,
	catalogGateway *catalog.CatalogGateway,
	txManager *tx.Manager,
	retrier *backoff_adapter.Retrier,
	clock clock.Real,
	log logger.Logger,
) *orderService.Service {
	return orderService.New(
		orders,
		outbox,
		ledger,
		courierMatcher,
		codes,
		catalogGateway,
		txManager,
		retrier,
		clock,
		log,
	)
}

func provideServiceReputation(
	ratings *ratingRepo.Repository,
	profiles *reputationRepo.Repository,
	couriers *courierRepo.Repository,
	orders *orderRepo.Repository,
	txManager *tx.Manager,
	retrier *backoff_adapter.Retrier,
	clock clock.Real,
	log logger.Logger,
) *reputation.Service {
	return reputation.New(ratings, profiles, couriers, orders, txManager, retrier, clock, log)
}

func provideServiceNotifier(
	repository *notificationRepo.Repository,
	publisher *notifications.Gateway,
	templates *notification_template.TemplateFactory,
	clock clock.Real,
	log logger.Logger,
) *notifier.Notifier {
	return notifier.New(repository, publisher, templates, clock, log)
}

func provideOutboxRelay(
	repository *outboxRepo.Repository,
	publisher *transitions.Gateway,
	txManager *tx.Manager,
	clock clock.Real,
	cfg *config.Config,
	log logger.Logger,
) *outboxService.Relay {
	return outboxService.New(repository, publisher, txManager, clock, cfg.Tasks.OutboxRelayBatchSize, log)
}

func provideOutboxRelayTask(
	log logger.Logger,
	relay *outboxService.Relay,
	cfg *config.Config,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(log, relay, cfg.Tasks.OutboxRelayInterval)
}

func provideCourierAvailabilityTask(
	log logger.Logger,
	service *courierService.Courier,
	cfg *config.Config,
) *courier_availability.CourierAvailability {
	return courier_availability.NewCourierAvailability(log, service, cfg.Tasks.CourierAvailabilityInterval)
}

func provideTaskList(
	outboxRelayTask *outbox_relay.OutboxRelay,
	courierAvailabilityTask *courier_availability.CourierAvailability,
) []background.Task {
	return []background.Task{
		outboxRelayTask,
		courierAvailabilityTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
