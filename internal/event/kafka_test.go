package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"

	"chat-commerce/config"
	kafkaCfg "chat-commerce/config/kafka"
	"chat-commerce/pkg/log"
)

type mockWriter struct {
	msgs []kafka.Message
	err  error
}

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	m.msgs = append(m.msgs, msgs...)
	return m.err
}

func (m *mockWriter) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &mockWriter{}
	p := &kafkaPublisher{writer: w, l: log.NewNop()}

	err := p.Publish(context.Background(), Event{Type: TypeOrderCreated, OrderID: "o1", UserID: "u1", Amount: 499})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.msgs))
	}

	msg := w.msgs[0]
	if string(msg.Key) != "o1" {
		t.Errorf("message must be keyed by order id, got %q", msg.Key)
	}
	var got Event
	if err := json.Unmarshal(msg.Value, &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Type != TypeOrderCreated || got.Amount != 499 || got.OccurredAt.IsZero() {
		t.Errorf("unexpected event %+v", got)
	}
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	p := &kafkaPublisher{writer: &mockWriter{err: errors.New("broker down")}, l: log.NewNop()}
	if err := p.Publish(context.Background(), Event{Type: TypePaymentCaptured, OrderID: "o1"}); err == nil {
		t.Fatal("expected write error")
	}
}

func TestNewKafkaPublisher_NoBrokers(t *testing.T) {
	_, err := NewKafkaPublisher(config.KafkaConfig{OrderTopic: "t"}, log.NewNop())
	if !errors.Is(err, kafkaCfg.ErrNoBrokers) {
		t.Fatalf("expected ErrNoBrokers, got %v", err)
	}
}
