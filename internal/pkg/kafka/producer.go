package kafka

import (
	"context"
	"fmt"

	"fulfillment/internal/pkg/config"
	"fulfillment/pkg/logger"

	"github.com/IBM/sarama"
)

func NewProducerConfig(versionStr string, retryMax int) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	// SyncProducer требует Successes
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	// ключ заказа в один раздел, порядок событий заказа сохраняется
	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	if retryMax > 0 {
		cfg.Producer.Retry.Max = retryMax
	}

	return cfg, nil
}

func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	saramaConfig, err := NewProducerConfig(cfg.Sarama.Version, cfg.Sarama.ProducerRetryMax)
	if err != nil {
		return nil, fmt.Errorf("build producer config: %w", err)
	}

	brokers := ParseBrokers(cfg.Brokers)
	producerLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	if err := waitForBrokers(ctx, producerLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	producerLog.Info("Kafka producer ready")
	return producer, nil
}
