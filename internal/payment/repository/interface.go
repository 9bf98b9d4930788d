package repository

import (
	"context"

	"chat-commerce/internal/payment"
)

// Repository is the data store of payment records. There is at most one
// record per order.
type Repository interface {
	UpsertPayment(ctx context.Context, opt UpsertPaymentOptions) (payment.Payment, error)
	GetByOrder(ctx context.Context, orderID string) (payment.Payment, error)
}
