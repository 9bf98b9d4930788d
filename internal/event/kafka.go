package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"chat-commerce/config"
	kafkaCfg "chat-commerce/config/kafka"
	"chat-commerce/pkg/log"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer messageWriter
	l      log.Logger
}

// NewKafkaPublisher publishes events as JSON to the configured order topic,
// keyed by order id.
func NewKafkaPublisher(cfg config.KafkaConfig, l log.Logger) (Publisher, error) {
	w, err := kafkaCfg.NewWriter(cfg, cfg.OrderTopic)
	if err != nil {
		return nil, err
	}
	return &kafkaPublisher{writer: w, l: l}, nil
}

func (p *kafkaPublisher) Publish(ctx context.Context, e Event) error {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("event.Publish marshal: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(e.OrderID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("event.Publish %s: %w", e.Type, err)
	}

	p.l.Debugf(ctx, "event.Publish: sent %s for order %s", e.Type, e.OrderID)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
