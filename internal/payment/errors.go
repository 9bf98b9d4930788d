package payment

import "errors"

var (
	ErrGatewayNotConfigured = errors.New("Razorpay keys are not configured")
	ErrAlreadyPaid          = errors.New("Order is already paid")
	ErrAmountTooSmall       = errors.New("Amount must be at least 1 INR")
	ErrMissingFields        = errors.New("Missing required fields: orderId, razorpayOrderId, razorpayPaymentId, razorpaySignature")
	ErrOrderMismatch        = errors.New("Razorpay order does not match")
	ErrInvalidSignature     = errors.New("Invalid payment signature")
	ErrInvalidWebhook       = errors.New("Invalid webhook payload")
)
