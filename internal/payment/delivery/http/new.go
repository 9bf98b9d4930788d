package http

import (
	"chat-commerce/internal/payment"
	"chat-commerce/pkg/log"
	"chat-commerce/pkg/ratelimit"
)

type handler struct {
	l              log.Logger
	uc             payment.UseCase
	webhookLimiter *ratelimit.Limiter
}

// New creates a new HTTP handler for the payment domain. Webhook deliveries
// are limited to webhookRateLimitPerMin per source IP.
func New(l log.Logger, uc payment.UseCase, webhookRateLimitPerMin int) *handler {
	return &handler{
		l:              l,
		uc:             uc,
		webhookLimiter: ratelimit.New(webhookRateLimitPerMin),
	}
}
