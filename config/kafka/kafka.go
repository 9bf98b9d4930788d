package kafka

import (
	"errors"
	"time"

	"github.com/segmentio/kafka-go"

	"chat-commerce/config"
)

var ErrNoBrokers = errors.New("kafka: no brokers configured")

// NewWriter builds a producer for topic. Messages with the same key land on
// the same partition.
func NewWriter(cfg config.KafkaConfig, topic string) (*kafka.Writer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}

	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           timeout,
		AllowAutoTopicCreation: true,
	}, nil
}

// NewReader builds a consumer group reader for topic.
func NewReader(cfg config.KafkaConfig, topic string) (*kafka.Reader, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}

	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	}), nil
}
