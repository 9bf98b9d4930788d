package chat

import (
	"chat-commerce/internal/model"
)

// Response types rendered by the chat UI.
const (
	TypeProductList    = "product_list"
	TypeCart           = "cart"
	TypeOrderCreated   = "order_created"
	TypeCheckoutReady  = "checkout_ready"
	TypeOrderConfirmed = "order_confirmed"
	TypeUnknown        = "unknown"
	TypeError          = "error"
)

// Input is one chat message plus the structured selections the UI sends with it.
type Input struct {
	Message         string
	ProductID       string
	Quantity        *int
	OrderID         string
	ShippingAddress *model.ShippingAddress
}

// Response is the single envelope every chat outcome is rendered as.
type Response struct {
	Type        string   `json:"type"`
	Message     string   `json:"message"`
	Data        any      `json:"data"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// ErrorResponse wraps a failure message in the envelope.
func ErrorResponse(message string) Response {
	return Response{Type: TypeError, Message: message, Data: nil}
}

// --- Response data ---

// CategoryData is the category summary embedded in a product card.
type CategoryData struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductData is one product card in a product_list reply.
type ProductData struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Slug          string       `json:"slug"`
	Price         float64      `json:"price"`
	DiscountPrice *float64     `json:"discountPrice"`
	Images        []string     `json:"images"`
	Stock         int          `json:"stock"`
	OutOfStock    bool         `json:"outOfStock"`
	Category      CategoryData `json:"category"`
}

// CartProductData is the product summary shown on a cart line.
type CartProductData struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Image         string   `json:"image"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice"`
	Stock         int      `json:"stock"`
}

// CartItemData is one cart line.
type CartItemData struct {
	Product       CartProductData `json:"product"`
	Quantity      int             `json:"quantity"`
	PriceSnapshot float64         `json:"priceSnapshot"`
}

// CartData is the data of a cart reply.
type CartData struct {
	Items      []CartItemData `json:"items"`
	TotalPrice float64        `json:"totalPrice"`
}

// OrderItemData is one line of a placed order.
type OrderItemData struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// OrderData is the data of order_created and order status replies.
type OrderData struct {
	OrderID         string                `json:"orderId"`
	TotalAmount     float64               `json:"totalAmount"`
	Items           []OrderItemData       `json:"items"`
	ShippingAddress model.ShippingAddress `json:"shippingAddress"`
	OrderStatus     string                `json:"orderStatus,omitempty"`
	PaymentStatus   string                `json:"paymentStatus,omitempty"`
}

// OrderListData lists the user's orders when no order id was given.
type OrderListData struct {
	Orders []OrderData `json:"orders"`
}

// CheckoutData carries what the client needs to open the payment sheet.
type CheckoutData struct {
	RazorpayOrderID string  `json:"razorpayOrderId"`
	KeyID           string  `json:"keyId"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	OrderID         string  `json:"orderId"`
}
