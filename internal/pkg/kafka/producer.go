package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"samecity/internal/pkg/config"
	"samecity/pkg/logger"
)

func NewProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 5
	cfg.Net.MaxOpenRequests = 1

	return cfg, nil
}

// NewSyncProducer waits for the brokers the same way the consumer does and
// returns a producer acknowledged by all in-sync replicas.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (sarama.SyncProducer, error) {
	saramaConfig, err := NewProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build producer config: %w", err)
	}

	brokers := Brokers(cfg)
	producerLog := log.With(logger.NewField("brokers", brokers))

	if err := pingKafka(ctx, producerLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create sync producer: %w", err)
	}
	return producer, nil
}
