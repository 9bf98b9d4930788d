package usecase

import (
	"chat-commerce/internal/event"
	"chat-commerce/internal/order"
	"chat-commerce/internal/payment/repository"
	"chat-commerce/pkg/log"
	"chat-commerce/pkg/razorpay"
)

// Config holds the gateway settings the use case needs beyond the client.
type Config struct {
	Currency      string
	WebhookSecret string
}

type implUseCase struct {
	repo      repository.Repository
	orders    order.UseCase
	gateway   razorpay.IRazorpay
	publisher event.Publisher
	cfg       Config
	l         log.Logger
}

// New creates a new payment UseCase. gateway may be nil when no keys are
// configured; checkout and verification then fail with ErrGatewayNotConfigured.
func New(repo repository.Repository, orders order.UseCase, gateway razorpay.IRazorpay, publisher event.Publisher, cfg Config, l log.Logger) *implUseCase {
	if cfg.Currency == "" {
		cfg.Currency = razorpay.DefaultCurrency
	}
	return &implUseCase{
		repo:      repo,
		orders:    orders,
		gateway:   gateway,
		publisher: publisher,
		cfg:       cfg,
		l:         l,
	}
}
