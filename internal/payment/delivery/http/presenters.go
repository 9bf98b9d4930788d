package http

import (
	"chat-commerce/internal/payment"
)

// --- Request DTOs ---

type checkoutReq struct {
	OrderID string `json:"orderId" binding:"required"`
}

type verifyReq struct {
	OrderID           string `json:"orderId"`
	RazorpayOrderID   string `json:"razorpayOrderId"`
	RazorpayPaymentID string `json:"razorpayPaymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
}

func (r verifyReq) toInput() payment.VerifyInput {
	return payment.VerifyInput{
		OrderID:        r.OrderID,
		GatewayOrderID: r.RazorpayOrderID,
		PaymentID:      r.RazorpayPaymentID,
		Signature:      r.RazorpaySignature,
	}
}

// --- Response DTOs ---

type checkoutResp struct {
	RazorpayOrderID string  `json:"razorpayOrderId"`
	KeyID           string  `json:"keyId"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	OrderID         string  `json:"orderId"`
}

func newCheckoutResp(s payment.CheckoutSession) checkoutResp {
	return checkoutResp{
		RazorpayOrderID: s.GatewayOrderID,
		KeyID:           s.KeyID,
		Amount:          s.Amount,
		Currency:        s.Currency,
		OrderID:         s.OrderID,
	}
}

type paymentResp struct {
	ID        string  `json:"id,omitempty"`
	PaymentID string  `json:"paymentId,omitempty"`
	Provider  string  `json:"provider,omitempty"`
	Status    string  `json:"status,omitempty"`
	Amount    float64 `json:"amount,omitempty"`
	Currency  string  `json:"currency,omitempty"`
}

type verifyResp struct {
	OrderID       string       `json:"orderId"`
	PaymentStatus string       `json:"paymentStatus"`
	OrderStatus   string       `json:"orderStatus"`
	Payment       *paymentResp `json:"payment"`
	AlreadyPaid   bool         `json:"alreadyPaid"`
}

func newVerifyResp(out payment.VerifyOutput) verifyResp {
	resp := verifyResp{
		OrderID:       out.Order.ID,
		PaymentStatus: out.Order.PaymentStatus,
		OrderStatus:   out.Order.OrderStatus,
		AlreadyPaid:   out.AlreadyPaid,
	}
	if p := out.Payment; p.ID != "" {
		resp.Payment = &paymentResp{
			ID:        p.ID,
			PaymentID: p.PaymentID,
			Provider:  p.Provider,
			Status:    p.Status,
			Amount:    p.Amount,
			Currency:  p.Currency,
		}
	}
	return resp
}

type webhookResp struct {
	Event   string `json:"event"`
	OrderID string `json:"orderId,omitempty"`
	Updated bool   `json:"updated"`
	Ignored bool   `json:"ignored"`
}
