package repository

import (
	"context"

	"chat-commerce/internal/order"
)

// Repository is the data store of orders.
type Repository interface {
	// CreateOrder inserts the order, decrements stock and clears the user's
	// cart in one transaction.
	CreateOrder(ctx context.Context, opt CreateOrderOptions) (order.Order, error)
	GetOneOrder(ctx context.Context, opt GetOneOrderOptions) (order.Order, error)
	ListOrders(ctx context.Context, opt ListOrdersOptions) ([]order.Order, error)
	UpdateGatewayOrder(ctx context.Context, orderID, gatewayOrderID string) error
	MarkPaid(ctx context.Context, orderID string) (bool, error)
}
