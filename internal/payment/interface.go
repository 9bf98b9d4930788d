package payment

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	CreateCheckoutSession(ctx context.Context, orderID, userID string) (CheckoutSession, error)
	VerifyPayment(ctx context.Context, userID string, input VerifyInput) (VerifyOutput, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (WebhookResult, error)
}
