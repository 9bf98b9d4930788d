package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"chat-commerce/internal/event"
	"chat-commerce/internal/order"
	"chat-commerce/internal/payment"
	repo "chat-commerce/internal/payment/repository"
)

// VerifyPayment checks the checkout callback and marks the order paid.
// Verifying an already paid order is not an error.
func (uc *implUseCase) VerifyPayment(ctx context.Context, userID string, input payment.VerifyInput) (payment.VerifyOutput, error) {
	input = trimVerifyInput(input)
	if input.OrderID == "" || input.GatewayOrderID == "" || input.PaymentID == "" || input.Signature == "" {
		return payment.VerifyOutput{}, payment.ErrMissingFields
	}

	o, err := uc.orders.GetOrderByID(ctx, userID, input.OrderID)
	if err != nil {
		return payment.VerifyOutput{}, err
	}

	if o.IsPaid() {
		p, err := uc.repo.GetByOrder(ctx, o.ID)
		if err != nil {
			return payment.VerifyOutput{}, err
		}
		return payment.VerifyOutput{Order: o, Payment: p, AlreadyPaid: true}, nil
	}

	if o.GatewayOrderID != input.GatewayOrderID {
		return payment.VerifyOutput{}, payment.ErrOrderMismatch
	}
	if uc.gateway == nil {
		return payment.VerifyOutput{}, payment.ErrGatewayNotConfigured
	}
	if err := uc.gateway.VerifyPaymentSignature(input.GatewayOrderID, input.PaymentID, input.Signature); err != nil {
		uc.l.Warnf(ctx, "uc.VerifyPayment: signature rejected for order %s", o.ID)
		return payment.VerifyOutput{}, payment.ErrInvalidSignature
	}

	p, _, err := uc.capture(ctx, o, input.PaymentID, "verify")
	if err != nil {
		return payment.VerifyOutput{}, err
	}

	o.PaymentStatus = order.PaymentPaid
	return payment.VerifyOutput{Order: o, Payment: p}, nil
}

// capture marks the order paid, records the payment and publishes
// payment.captured when this call made the change.
func (uc *implUseCase) capture(ctx context.Context, o order.Order, paymentID, source string) (payment.Payment, bool, error) {
	changed, err := uc.orders.MarkPaid(ctx, o.ID)
	if err != nil {
		return payment.Payment{}, false, err
	}

	var p payment.Payment
	if paymentID != "" {
		p, err = uc.repo.UpsertPayment(ctx, repo.UpsertPaymentOptions{
			ID:        uuid.NewString(),
			OrderID:   o.ID,
			UserID:    o.UserID,
			Provider:  payment.ProviderRazorpay,
			PaymentID: paymentID,
			Status:    payment.StatusSuccess,
			Amount:    o.TotalAmount,
			Currency:  uc.cfg.Currency,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.capture UpsertPayment: %v", err)
			return payment.Payment{}, changed, err
		}
	}

	if changed {
		if err := uc.publisher.Publish(ctx, event.Event{
			Type:      event.TypePaymentCaptured,
			OrderID:   o.ID,
			UserID:    o.UserID,
			Amount:    o.TotalAmount,
			Currency:  uc.cfg.Currency,
			PaymentID: paymentID,
			Source:    source,
		}); err != nil {
			uc.l.Warnf(ctx, "uc.capture Publish: %v", err)
		}
	}

	return p, changed, nil
}

func trimVerifyInput(in payment.VerifyInput) payment.VerifyInput {
	return payment.VerifyInput{
		OrderID:        strings.TrimSpace(in.OrderID),
		GatewayOrderID: strings.TrimSpace(in.GatewayOrderID),
		PaymentID:      strings.TrimSpace(in.PaymentID),
		Signature:      strings.TrimSpace(in.Signature),
	}
}
