package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/IBM/sarama"
	"samecity/internal/pkg/config"
	"samecity/internal/pkg/connect"
	"samecity/pkg/logger"
)

// Consumer drives one consumer group over a fixed topic list.
type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewSaramaConfig(
	versionStr string,
	autoCommit bool,
	initialOffset int64,
	rebalanceStrategy sarama.BalanceStrategy,
) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Consumer.Return.Errors = true
	cfg.Consumer.Offsets.Initial = initialOffset
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{rebalanceStrategy}

	return cfg, nil
}

// Brokers splits the comma separated broker list from the environment.
func Brokers(cfg *config.Kafka) []string {
	var brokers []string
	for _, b := range strings.Split(cfg.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func NewConsumer(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Kafka,
	topics []string,
	handler sarama.ConsumerGroupHandler,
) (*Consumer, error) {
	saramaConfig, err := NewSaramaConfig(
		cfg.Sarama.Version,
		cfg.Sarama.ConsumerOffsetsAutocommit,
		sarama.OffsetOldest,
		sarama.NewBalanceStrategyRoundRobin(),
	)
	if err != nil {
		return nil, fmt.Errorf("build sarama config: %w", err)
	}

	brokers := Brokers(cfg)
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topics", topics),
	)

	if err := pingKafka(ctx, kafkaLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		client:  client,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start joins the group and re-joins after every rebalance until ctx is
// cancelled or the group is closed. Asynchronous group errors are logged.
func (c *Consumer) Start(ctx context.Context) error {
	go c.logErrors()

	for {
		err := c.client.Consume(ctx, c.topics, c.handler)
		switch {
		case errors.Is(err, sarama.ErrClosedConsumerGroup):
			return err
		case err != nil:
			c.log.With(
				logger.NewField("error", err),
			).Error("consume failed")
			return fmt.Errorf("consume: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Info("context cancelled, leaving consumer group")
			return ctx.Err()
		}
		c.log.Info("consumer group rebalanced, rejoining")
	}
}

func (c *Consumer) logErrors() {
	for err := range c.client.Errors() {
		c.log.With(
			logger.NewField("error", err),
		).Warn("consumer group error")
	}
}

func (c *Consumer) Close() error {
	return c.client.Close()
}

// pingKafka opens a throwaway client and lists topics, which needs a live
// broker and a valid protocol version.
func pingKafka(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	return connect.WaitDefault(ctx, log, "kafka", func(context.Context) error {
		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close kafka probe client",
					logger.NewField("error", err),
				)
			}
		}()

		_, err = client.Topics()
		return err
	})
}
