package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type razorpayImpl struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

func newRazorpayImpl(cfg Config) *razorpayImpl {
	return &razorpayImpl{
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

// KeyID returns the public key id
func (r *razorpayImpl) KeyID() string {
	return r.keyID
}

// CreateOrder calls POST /v1/orders with basic auth
func (r *razorpayImpl) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	if req.Amount < MinAmountPaise {
		return Order{}, ErrAmountTooSmall
	}
	if req.Currency == "" {
		req.Currency = DefaultCurrency
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Order{}, fmt.Errorf("razorpay: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+ordersPath, bytes.NewReader(body))
	if err != nil {
		return Order{}, fmt.Errorf("razorpay: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(r.keyID, r.keySecret)

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		return Order{}, fmt.Errorf("razorpay: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return Order{}, fmt.Errorf("razorpay: API error %d: %s", resp.StatusCode, string(raw))
	}

	var out Order
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Order{}, fmt.Errorf("razorpay: failed to decode response: %w", err)
	}
	if out.ID == "" {
		return Order{}, fmt.Errorf("razorpay: response missing order id")
	}
	return out, nil
}

// VerifyPaymentSignature checks HMAC-SHA256("orderId|paymentId", keySecret).
func (r *razorpayImpl) VerifyPaymentSignature(gatewayOrderID, paymentID, signature string) error {
	if !validHMAC([]byte(gatewayOrderID+"|"+paymentID), r.keySecret, signature) {
		return ErrInvalidSignature
	}
	return nil
}
