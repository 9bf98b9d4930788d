package chat

import "errors"

var (
	ErrProductIDRequired       = errors.New("Please select a product to add to cart (productId is required).")
	ErrShippingAddressRequired = errors.New("Shipping address is required to place an order. Please provide fullName, phone, address, city, state, and pincode.")
	ErrOrderIDRequired         = errors.New("Order ID is required for checkout. Please place an order first or provide the orderId.")
)

const (
	MsgUnauthorized = "Unauthorized. Please log in."
	MsgInternal     = "Something went wrong. Please try again."
)
