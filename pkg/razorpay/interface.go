package razorpay

import (
	"context"
)

// IRazorpay defines the gateway operations used at checkout.
// Implementations are safe for concurrent use.
type IRazorpay interface {
	// CreateOrder registers a payment order with the gateway
	CreateOrder(ctx context.Context, req OrderRequest) (Order, error)

	// VerifyPaymentSignature checks the checkout callback signature
	VerifyPaymentSignature(gatewayOrderID, paymentID, signature string) error

	// KeyID returns the public key handed to the browser checkout
	KeyID() string
}

// New creates a new Razorpay client with the given configuration
func New(cfg Config) (IRazorpay, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newRazorpayImpl(cfg), nil
}
