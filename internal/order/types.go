package order

import (
	"time"

	"chat-commerce/internal/model"
)

// Order statuses.
const (
	StatusPlaced    = "PLACED"
	StatusConfirmed = "CONFIRMED"
	StatusShipped   = "SHIPPED"
	StatusDelivered = "DELIVERED"
	StatusCancelled = "CANCELLED"
)

// Payment statuses.
const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
	PaymentFailed  = "FAILED"
)

// Item is an order line frozen at placement time.
type Item struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

type Order struct {
	ID              string
	UserID          string
	Items           []Item
	TotalAmount     float64
	ShippingAddress model.ShippingAddress
	OrderStatus     string
	PaymentStatus   string
	GatewayOrderID  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsPaid reports whether payment has been captured.
func (o Order) IsPaid() bool {
	return o.PaymentStatus == PaymentPaid
}
