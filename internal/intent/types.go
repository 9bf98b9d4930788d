package intent

import "context"

// Intent is one of the closed set of commerce intents.
type Intent string

const (
	ListProducts   Intent = "LIST_PRODUCTS"
	AddToCart      Intent = "ADD_TO_CART"
	GetCart        Intent = "GET_CART"
	PlaceOrder     Intent = "PLACE_ORDER"
	Checkout       Intent = "CHECKOUT"
	GetOrderStatus Intent = "GET_ORDER_STATUS"
	Unknown        Intent = "UNKNOWN"
)

// All lists every intent, UNKNOWN last.
var All = []Intent{ListProducts, AddToCart, GetCart, PlaceOrder, Checkout, GetOrderStatus, Unknown}

// Parse maps s onto the closed set. Anything unrecognised is Unknown.
func Parse(s string) Intent {
	for _, i := range All {
		if string(i) == s {
			return i
		}
	}
	return Unknown
}

// Context carries structured hints from the client (selected product, current order).
type Context struct {
	ProductID string
	OrderID   string
}

// Params are the parameters extracted for an intent. Only the fields that
// belong to the intent are ever set.
type Params struct {
	Query     string   `json:"query,omitempty"`
	Category  string   `json:"category,omitempty"`
	MinPrice  *float64 `json:"minPrice,omitempty"`
	MaxPrice  *float64 `json:"maxPrice,omitempty"`
	ProductID string   `json:"productId,omitempty"`
	Quantity  *int     `json:"quantity,omitempty"`
	OrderID   string   `json:"orderId,omitempty"`
}

// Result is the outcome of classifying one message.
type Result struct {
	Intent Intent `json:"intent"`
	Params Params `json:"params"`
}

// Provider is one classification strategy.
type Provider interface {
	Name() string
	// Classify returns ErrDeclined when the strategy cannot decide.
	Classify(ctx context.Context, message string, c Context) (Result, error)
}

// Classifier turns a chat message into an intent. It never fails.
type Classifier interface {
	Classify(ctx context.Context, message string, c Context) Result
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
