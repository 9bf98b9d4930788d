package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chat-commerce/config"
	"chat-commerce/config/postgre"
	_ "chat-commerce/docs" // Swagger docs
	"chat-commerce/internal/event"
	"chat-commerce/internal/httpserver"
	"chat-commerce/internal/intent"
	"chat-commerce/internal/middleware"
	"chat-commerce/pkg/llmprovider"
	"chat-commerce/pkg/log"
	"chat-commerce/pkg/razorpay"
	"chat-commerce/pkg/scope"
)

// @title       Chat Commerce API
// @description Conversational storefront: catalog, cart, orders and Razorpay checkout behind a chat agent.
// @version     1
// @host        localhost:8080
// @BasePath    /
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Chat Commerce API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Infrastructure
	postgresDB := postgre.NewLazy(cfg.Postgres, logger)
	defer postgresDB.Close()

	publisher := event.NewNopPublisher()
	if len(cfg.Kafka.Brokers) > 0 {
		kp, kErr := event.NewKafkaPublisher(cfg.Kafka, logger)
		if kErr != nil {
			logger.Warnf(ctx, "Kafka not available (optional): %v", kErr)
		} else {
			publisher = kp
			logger.Infof(ctx, "Order events publish to topic %s", cfg.Kafka.OrderTopic)
		}
	} else {
		logger.Info(ctx, "Kafka brokers not configured, order events are dropped")
	}
	defer func() {
		if cErr := publisher.Close(); cErr != nil {
			logger.Warnf(ctx, "Failed to close event publisher: %v", cErr)
		}
	}()

	// 4. Auth
	tokens, err := scope.New(scope.Config{
		Secret:        cfg.JWT.Secret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     cfg.JWT.AccessTTL,
		RefreshTTL:    cfg.JWT.RefreshTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	mw := middleware.New(logger, tokens, cfg.Chat.RateLimitPerMin)

	// 5. Intent classifier: rules always, model first when a provider is usable
	var modelProvider intent.Provider
	if cfg.LLM.HasUsableProvider() {
		manager, mErr := llmprovider.NewManagerFromConfig(cfg.LLM, logger)
		if mErr != nil {
			logger.Warnf(ctx, "LLM providers unavailable, using rules only: %v", mErr)
		}
		if manager.Enabled() {
			modelProvider = intent.NewModelProvider(manager, logger, cfg.Intent.Temperature)
			logger.Info(ctx, "✅ Model intent classification enabled")
		}
	} else {
		logger.Info(ctx, "No LLM provider configured, using rule based intents")
	}
	classifier := intent.New(logger, modelProvider, cfg.Intent.ModelTimeout)

	// 6. Razorpay (optional: checkout is rejected without keys)
	gateway, err := razorpay.New(razorpay.Config{
		KeyID:     cfg.Razorpay.KeyID,
		KeySecret: cfg.Razorpay.KeySecret,
		BaseURL:   cfg.Razorpay.BaseURL,
	})
	if err != nil {
		if !errors.Is(err, razorpay.ErrKeysNotConfigured) {
			logger.Error(ctx, "Failed to initialize Razorpay: ", err)
			return
		}
		logger.Warn(ctx, "Razorpay keys missing, checkout disabled")
		gateway = nil
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:                 logger,
		Port:                   cfg.HTTPServer.Port,
		Mode:                   cfg.HTTPServer.Mode,
		Environment:            cfg.Environment.Name,
		ShutdownTimeout:        cfg.HTTPServer.ShutdownTimeout,
		AllowedOrigins:         cfg.CORS.AllowedOrigins,
		PostgresDB:             postgresDB,
		Publisher:              publisher,
		Middleware:             mw,
		Tokens:                 tokens,
		Razorpay:               gateway,
		Classifier:             classifier,
		Currency:               cfg.Razorpay.Currency,
		WebhookSecret:          cfg.Razorpay.WebhookSecret,
		WebhookRateLimitPerMin: cfg.Razorpay.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
