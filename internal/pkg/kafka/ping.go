package kafka

import (
	"context"
	"fmt"
	"time"

	"fulfillment/pkg/logger"
	retrierconfig "fulfillment/pkg/retrier"
	"fulfillment/pkg/retrier/backoff_adapter"

	"github.com/IBM/sarama"
)

const (
	brokersInitialInterval = time.Second
	brokersMaxInterval     = 30 * time.Second
	brokersMaxElapsedTime  = 2 * time.Minute
	brokersRandomization   = 0.5
	brokersMultiplier      = 2
)

// waitForBrokers ждет, пока кластер начнет отдавать метаданные.
func waitForBrokers(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: brokersInitialInterval,
		MaxInterval:     brokersMaxInterval,
		MaxElapsedTime:  brokersMaxElapsedTime,
		Randomization:   brokersRandomization,
		Multiplier:      brokersMultiplier,
		OnRetry: func(err error, attempt int, wait time.Duration) {
			log.Warn("kafka is not reachable yet",
				logger.NewField("attempt", attempt),
				logger.NewField("next_try_in", wait.String()),
				logger.NewField("error", err),
			)
		},
	})

	err := retrier.ExecuteWithContext(ctx, func(context.Context) error {
		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Warn("close kafka ping client", logger.NewField("error", err))
			}
		}()

		_, err = client.Topics()
		return err
	})
	if err != nil {
		log.Error("kafka connection failed after retries", logger.NewField("error", err))
		return fmt.Errorf("connect to kafka: %w", err)
	}

	log.Info("kafka connection established")
	return nil
}
