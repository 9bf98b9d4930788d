package usecase

import (
	"context"
	"strings"

	"chat-commerce/internal/payment"
	"chat-commerce/pkg/razorpay"
)

// CreateCheckoutSession registers a gateway order for the user's unpaid order.
func (uc *implUseCase) CreateCheckoutSession(ctx context.Context, orderID, userID string) (payment.CheckoutSession, error) {
	o, err := uc.orders.GetOrderByID(ctx, userID, strings.TrimSpace(orderID))
	if err != nil {
		return payment.CheckoutSession{}, err
	}
	if o.IsPaid() {
		return payment.CheckoutSession{}, payment.ErrAlreadyPaid
	}

	amount := razorpay.ToPaise(o.TotalAmount)
	if amount < razorpay.MinAmountPaise {
		return payment.CheckoutSession{}, payment.ErrAmountTooSmall
	}
	if uc.gateway == nil {
		return payment.CheckoutSession{}, payment.ErrGatewayNotConfigured
	}

	gwOrder, err := uc.gateway.CreateOrder(ctx, razorpay.OrderRequest{
		Amount:   amount,
		Currency: uc.cfg.Currency,
		Receipt:  o.ID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateCheckoutSession gateway.CreateOrder: %v", err)
		return payment.CheckoutSession{}, err
	}

	if err := uc.orders.AttachGatewayOrder(ctx, o.ID, gwOrder.ID); err != nil {
		return payment.CheckoutSession{}, err
	}

	return payment.CheckoutSession{
		GatewayOrderID: gwOrder.ID,
		KeyID:          uc.gateway.KeyID(),
		Amount:         o.TotalAmount,
		Currency:       uc.cfg.Currency,
		OrderID:        o.ID,
	}, nil
}
