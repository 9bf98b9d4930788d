package razorpay

import "time"

const (
	// DefaultBaseURL is the public Razorpay API endpoint
	DefaultBaseURL = "https://api.razorpay.com"

	// DefaultCurrency is used when the order request omits one
	DefaultCurrency = "INR"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 15 * time.Second

	// MinAmountPaise is the smallest amount the gateway accepts (1 INR)
	MinAmountPaise = 100

	ordersPath = "/v1/orders"
)
