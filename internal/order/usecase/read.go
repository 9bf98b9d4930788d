package usecase

import (
	"context"

	"github.com/google/uuid"

	"chat-commerce/internal/order"
	repo "chat-commerce/internal/order/repository"
)

// GetOrders returns the user's orders, newest first.
func (uc *implUseCase) GetOrders(ctx context.Context, userID string) ([]order.Order, error) {
	if userID == "" {
		return nil, order.ErrUserRequired
	}
	orders, err := uc.repo.ListOrders(ctx, repo.ListOrdersOptions{UserID: userID, Limit: maxListedOrders})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetOrders ListOrders: %v", err)
		return nil, err
	}
	return orders, nil
}

// GetOrderByID returns one of the user's orders. Orders of other users are
// reported as not found.
func (uc *implUseCase) GetOrderByID(ctx context.Context, userID, orderID string) (order.Order, error) {
	if userID == "" {
		return order.Order{}, order.ErrUserRequired
	}
	if _, err := uuid.Parse(orderID); err != nil {
		return order.Order{}, order.ErrInvalidID
	}

	o, err := uc.repo.GetOneOrder(ctx, repo.GetOneOrderOptions{ID: orderID, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetOrderByID GetOneOrder: %v", err)
		return order.Order{}, err
	}
	if o.ID == "" {
		return order.Order{}, order.ErrOrderNotFound
	}
	return o, nil
}

// GetByGatewayOrderID finds the order a payment gateway order belongs to.
func (uc *implUseCase) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (order.Order, error) {
	if gatewayOrderID == "" {
		return order.Order{}, order.ErrOrderNotFound
	}
	o, err := uc.repo.GetOneOrder(ctx, repo.GetOneOrderOptions{GatewayOrderID: gatewayOrderID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetByGatewayOrderID GetOneOrder: %v", err)
		return order.Order{}, err
	}
	if o.ID == "" {
		return order.Order{}, order.ErrOrderNotFound
	}
	return o, nil
}
