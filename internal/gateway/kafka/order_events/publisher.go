package order_events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"
	"samecity/internal/entities"
)

const eventTypeDelivered = "order.delivered"

// Publisher emits order lifecycle events keyed by order id so all events of
// one order land on the same partition.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

func New(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) PublishDelivered(ctx context.Context, event entities.DeliveredEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal delivered event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventTypeDelivered)},
		},
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("send delivered event: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
