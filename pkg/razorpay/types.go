package razorpay

import (
	"errors"
	"net/http"
	"strings"
)

var (
	ErrKeysNotConfigured    = errors.New("Razorpay keys are not configured")
	ErrInvalidSignature     = errors.New("Invalid payment signature")
	ErrWebhookNotConfigured = errors.New("Razorpay webhook secret is not configured")
	ErrAmountTooSmall       = errors.New("Order amount must be at least 1 INR")
)

// Config holds the gateway credentials.
type Config struct {
	KeyID      string
	KeySecret  string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate fills defaults and checks that both keys are present.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.KeyID) == "" || strings.TrimSpace(c.KeySecret) == "" {
		return ErrKeysNotConfigured
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// OrderRequest creates a gateway order. Amount is in the smallest currency unit.
type OrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// Order is the gateway's view of a payment order.
type Order struct {
	ID       string `json:"id"`
	Entity   string `json:"entity"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// ToPaise converts a rupee amount to paise, rounding to the nearest unit.
func ToPaise(amount float64) int64 {
	if amount < 0 {
		return -int64(-amount*100 + 0.5)
	}
	return int64(amount*100 + 0.5)
}
