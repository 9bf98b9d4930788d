package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chat-commerce/config"
	"chat-commerce/internal/event"
	"chat-commerce/pkg/log"
)

// main is the entry point for the order events consumer.
// It joins the configured consumer group on the order topic and records every
// order lifecycle event, the hook for fulfilment and notification workers.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting order events consumer...")

	consumer, err := event.NewKafkaConsumer(cfg.Kafka, logger)
	if err != nil {
		logger.Error(ctx, "Failed to create Kafka consumer: ", err)
		return
	}
	defer func() {
		if cErr := consumer.Close(); cErr != nil {
			logger.Warnf(ctx, "Failed to close consumer: %v", cErr)
		}
	}()

	logger.Infof(ctx, "Consuming %s as group %s", cfg.Kafka.OrderTopic, cfg.Kafka.GroupID)

	err = consumer.Run(ctx, func(ctx context.Context, e event.Event) error {
		switch e.Type {
		case event.TypeOrderCreated:
			logger.Infof(ctx, "order %s created by %s: %.2f %s", e.OrderID, e.UserID, e.Amount, e.Currency)
		case event.TypePaymentCaptured:
			logger.Infof(ctx, "order %s paid via %s (payment %s)", e.OrderID, e.Source, e.PaymentID)
		default:
			logger.Debugf(ctx, "ignoring event %s for order %s", e.Type, e.OrderID)
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "Consumer stopped with error: ", err)
		return
	}

	logger.Info(ctx, "Consumer stopped gracefully")
}
