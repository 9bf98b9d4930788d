package usecase

import (
	"context"
	"errors"

	"github.com/tidwall/gjson"

	"chat-commerce/internal/order"
	"chat-commerce/internal/payment"
	"chat-commerce/pkg/razorpay"
)

// HandleWebhook applies a signed gateway event. Unknown events and orders
// that are not ours are acknowledged and ignored so the gateway stops retrying.
func (uc *implUseCase) HandleWebhook(ctx context.Context, payload []byte, signature string) (payment.WebhookResult, error) {
	if err := razorpay.VerifyWebhookSignature(payload, signature, uc.cfg.WebhookSecret); err != nil {
		if errors.Is(err, razorpay.ErrWebhookNotConfigured) {
			uc.l.Errorf(ctx, "uc.HandleWebhook: %v", err)
			return payment.WebhookResult{}, payment.ErrGatewayNotConfigured
		}
		return payment.WebhookResult{}, payment.ErrInvalidSignature
	}
	if !gjson.ValidBytes(payload) {
		return payment.WebhookResult{}, payment.ErrInvalidWebhook
	}

	doc := gjson.ParseBytes(payload)
	result := payment.WebhookResult{Event: doc.Get("event").String()}

	var gatewayOrderID string
	switch result.Event {
	case payment.EventPaymentCaptured:
		gatewayOrderID = doc.Get("payload.payment.entity.order_id").String()
	case payment.EventOrderPaid:
		gatewayOrderID = doc.Get("payload.order.entity.id").String()
	default:
		result.Ignored = true
		return result, nil
	}
	paymentID := doc.Get("payload.payment.entity.id").String()

	o, err := uc.orders.GetByGatewayOrderID(ctx, gatewayOrderID)
	if errors.Is(err, order.ErrOrderNotFound) {
		uc.l.Warnf(ctx, "uc.HandleWebhook: no order for gateway order %q", gatewayOrderID)
		result.Ignored = true
		return result, nil
	}
	if err != nil {
		return payment.WebhookResult{}, err
	}
	result.OrderID = o.ID

	if o.IsPaid() {
		return result, nil
	}

	_, changed, err := uc.capture(ctx, o, paymentID, "webhook")
	if err != nil {
		return payment.WebhookResult{}, err
	}
	result.Updated = changed

	uc.l.Infof(ctx, "uc.HandleWebhook: %s for order %s (updated=%v)", result.Event, o.ID, changed)
	return result, nil
}
