package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"

	"chat-commerce/config"
	kafkaCfg "chat-commerce/config/kafka"
	"chat-commerce/pkg/log"
)

// Handler processes one decoded event. A returned error is logged and the
// message is still committed so one poison event cannot stall the group.
type Handler func(ctx context.Context, e Event) error

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads order events as part of a consumer group.
type Consumer struct {
	reader messageReader
	l      log.Logger
}

// NewKafkaConsumer joins the configured group on the order topic.
func NewKafkaConsumer(cfg config.KafkaConfig, l log.Logger) (*Consumer, error) {
	r, err := kafkaCfg.NewReader(cfg, cfg.OrderTopic)
	if err != nil {
		return nil, err
	}
	return &Consumer{reader: r, l: l}, nil
}

// Run fetches until ctx is cancelled. It returns nil on cancellation.
func (c *Consumer) Run(ctx context.Context, h Handler) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("event.Consumer fetch: %w", err)
		}

		var e Event
		if err := json.Unmarshal(msg.Value, &e); err != nil {
			c.l.Warnf(ctx, "event.Consumer: skip undecodable message at offset %d: %v", msg.Offset, err)
		} else if err := h(ctx, e); err != nil {
			c.l.Errorf(ctx, "event.Consumer: handle %s for order %s: %v", e.Type, e.OrderID, err)
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("event.Consumer commit: %w", err)
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
