package repository

import (
	"chat-commerce/internal/model"
	"chat-commerce/internal/order"
)

type CreateOrderOptions struct {
	ID              string
	UserID          string
	Items           []order.Item
	TotalAmount     float64
	ShippingAddress model.ShippingAddress
}

// GetOneOrderOptions holds filters for fetching a single order (AND).
type GetOneOrderOptions struct {
	ID             string
	UserID         string
	GatewayOrderID string
}

type ListOrdersOptions struct {
	UserID string
	Limit  int
}
