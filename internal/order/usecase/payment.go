package usecase

import (
	"context"
)

// AttachGatewayOrder records the gateway order created for checkout.
func (uc *implUseCase) AttachGatewayOrder(ctx context.Context, orderID, gatewayOrderID string) error {
	if err := uc.repo.UpdateGatewayOrder(ctx, orderID, gatewayOrderID); err != nil {
		uc.l.Errorf(ctx, "uc.AttachGatewayOrder UpdateGatewayOrder: %v", err)
		return err
	}
	return nil
}

// MarkPaid flips the payment status to PAID. It is idempotent and reports
// whether this call made the change.
func (uc *implUseCase) MarkPaid(ctx context.Context, orderID string) (bool, error) {
	changed, err := uc.repo.MarkPaid(ctx, orderID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.MarkPaid MarkPaid: %v", err)
		return false, err
	}
	return changed, nil
}
