package order

import (
	"context"

	"chat-commerce/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	CreateOrder(ctx context.Context, userID string, addr model.ShippingAddress) (Order, error)
	GetOrders(ctx context.Context, userID string) ([]Order, error)
	GetOrderByID(ctx context.Context, userID, orderID string) (Order, error)

	// Payment bookkeeping
	AttachGatewayOrder(ctx context.Context, orderID, gatewayOrderID string) error
	MarkPaid(ctx context.Context, orderID string) (bool, error)
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (Order, error)
}
