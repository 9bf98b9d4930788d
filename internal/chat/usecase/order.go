package usecase

import (
	"context"
	"fmt"

	"chat-commerce/internal/chat"
	"chat-commerce/internal/intent"
)

func (uc *implUseCase) placeOrder(ctx context.Context, userID string, input chat.Input) (chat.Response, error) {
	if input.ShippingAddress == nil {
		return chat.Response{}, chat.ErrShippingAddressRequired
	}

	o, err := uc.order.CreateOrder(ctx, userID, *input.ShippingAddress)
	if err != nil {
		return chat.Response{}, err
	}

	return chat.Response{
		Type:        chat.TypeOrderCreated,
		Message:     fmt.Sprintf("Order placed successfully. Order ID: %s. You can proceed to checkout.", o.ID),
		Data:        newOrderData(o),
		Suggestions: []string{"Proceed to checkout", "View order"},
	}, nil
}

func (uc *implUseCase) checkout(ctx context.Context, userID string, p intent.Params, input chat.Input) (chat.Response, error) {
	orderID := firstNonEmpty(input.OrderID, p.OrderID)
	if orderID == "" {
		return chat.Response{}, chat.ErrOrderIDRequired
	}

	s, err := uc.payment.CreateCheckoutSession(ctx, orderID, userID)
	if err != nil {
		return chat.Response{}, err
	}

	return chat.Response{
		Type:    chat.TypeCheckoutReady,
		Message: "Proceed to payment. Use the details below to open Razorpay Checkout on the frontend.",
		Data: chat.CheckoutData{
			RazorpayOrderID: s.GatewayOrderID,
			KeyID:           s.KeyID,
			Amount:          s.Amount,
			Currency:        s.Currency,
			OrderID:         s.OrderID,
		},
		Suggestions: []string{"Complete payment", "View order"},
	}, nil
}

// orderStatus shows one order when an id is known, otherwise the recent ones.
func (uc *implUseCase) orderStatus(ctx context.Context, userID string, p intent.Params, input chat.Input) (chat.Response, error) {
	if orderID := firstNonEmpty(input.OrderID, p.OrderID); orderID != "" {
		o, err := uc.order.GetOrderByID(ctx, userID, orderID)
		if err != nil {
			return chat.Response{}, err
		}
		return chat.Response{
			Type:        chat.TypeOrderConfirmed,
			Message:     fmt.Sprintf("Order %s: %s, Payment: %s.", o.ID, o.OrderStatus, o.PaymentStatus),
			Data:        newOrderData(o),
			Suggestions: []string{"Track order", "Browse more"},
		}, nil
	}

	orders, err := uc.order.GetOrders(ctx, userID)
	if err != nil {
		return chat.Response{}, err
	}

	data := chat.OrderListData{Orders: make([]chat.OrderData, len(orders))}
	for i, o := range orders {
		data.Orders[i] = newOrderData(o)
	}

	if len(orders) == 0 {
		return chat.Response{
			Type:        chat.TypeOrderConfirmed,
			Message:     "You have no orders yet.",
			Data:        data,
			Suggestions: []string{"Browse products"},
		}, nil
	}
	return chat.Response{
		Type:        chat.TypeOrderConfirmed,
		Message:     fmt.Sprintf("You have %d order(s).", len(orders)),
		Data:        data,
		Suggestions: []string{"View order details", "Browse products"},
	}, nil
}
