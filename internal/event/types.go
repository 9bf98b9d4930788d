package event

import "time"

// Event types published on the order events topic.
const (
	TypeOrderCreated    = "order.created"
	TypePaymentCaptured = "payment.captured"
)

// Event is an order lifecycle notification. Events for one order share a key
// so they stay ordered.
type Event struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"orderId"`
	UserID     string    `json:"userId"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency,omitempty"`
	PaymentID  string    `json:"paymentId,omitempty"`
	Source     string    `json:"source,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
