package payment

import (
	"time"

	"chat-commerce/internal/order"
)

const ProviderRazorpay = "Razorpay"

// Payment record statuses.
const (
	StatusCreated  = "CREATED"
	StatusSuccess  = "SUCCESS"
	StatusFailed   = "FAILED"
	StatusRefunded = "REFUNDED"
)

// Webhook events that capture a payment.
const (
	EventPaymentCaptured = "payment.captured"
	EventOrderPaid       = "order.paid"
)

// CheckoutSession carries what the browser checkout needs to open the gateway.
type CheckoutSession struct {
	GatewayOrderID string
	KeyID          string
	Amount         float64
	Currency       string
	OrderID        string
}

type Payment struct {
	ID        string
	OrderID   string
	UserID    string
	Provider  string
	PaymentID string
	Status    string
	Amount    float64
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VerifyInput is the callback the browser checkout posts after payment.
type VerifyInput struct {
	OrderID        string
	GatewayOrderID string
	PaymentID      string
	Signature      string
}

type VerifyOutput struct {
	Order       order.Order
	Payment     Payment
	AlreadyPaid bool
}

// WebhookResult describes what a webhook delivery changed.
type WebhookResult struct {
	Event   string
	OrderID string
	Updated bool
	Ignored bool
}
