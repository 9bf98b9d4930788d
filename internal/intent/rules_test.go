package intent

import (
	"context"
	"reflect"
	"testing"
)

func TestRuleProvider_Classify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		ctx     Context
		want    Result
	}{
		{"listing verb", "show me some laptops", Context{}, Result{Intent: ListProducts}},
		{"max price", "show laptops under 50000", Context{}, Result{Intent: ListProducts, Params: Params{MaxPrice: floatPtr(50000)}}},
		{"max price with currency", "products under Rs 20000", Context{}, Result{Intent: ListProducts, Params: Params{MaxPrice: floatPtr(20000)}}},
		{"min and max", "find phones above 10000 and below INR 30000", Context{},
			Result{Intent: ListProducts, Params: Params{MinPrice: floatPtr(10000), MaxPrice: floatPtr(30000)}}},
		{"listing excluded by cart", "get my cart", Context{}, Result{Intent: GetCart}},
		{"add to cart no context", "add this to cart", Context{}, Result{Intent: AddToCart, Params: Params{Quantity: intPtr(1)}}},
		{"add to cart with context", "add to cart", Context{ProductID: "X"}, Result{Intent: AddToCart, Params: Params{ProductID: "X", Quantity: intPtr(1)}}},
		{"cart then put", "cart: put two of these", Context{}, Result{Intent: AddToCart, Params: Params{Quantity: intPtr(1)}}},
		{"context product with add", "please add it", Context{ProductID: "P9"}, Result{Intent: AddToCart, Params: Params{ProductID: "P9", Quantity: intPtr(1)}}},
		{"view cart", "view cart", Context{}, Result{Intent: GetCart}},
		{"place order", "place order", Context{}, Result{Intent: PlaceOrder}},
		{"order now", "I want to order now", Context{}, Result{Intent: PlaceOrder}},
		{"pay with context", "pay", Context{OrderID: "O1"}, Result{Intent: Checkout, Params: Params{OrderID: "O1"}}},
		{"checkout no context", "checkout", Context{}, Result{Intent: Checkout}},
		{"context order alone means checkout", "what next?", Context{OrderID: "O2"}, Result{Intent: Checkout, Params: Params{OrderID: "O2"}}},
		{"order status", "order status", Context{}, Result{Intent: GetOrderStatus}},
		{"track order", "track order please", Context{}, Result{Intent: GetOrderStatus}},
		{"unknown", "hello world", Context{}, Result{Intent: Unknown}},
	}

	p := NewRuleProvider()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Classify(context.Background(), tt.message, tt.ctx)
			if err != nil {
				t.Fatalf("rules must not fail: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.message, got, tt.want)
			}
		})
	}
}

func TestRuleProvider_Idempotent(t *testing.T) {
	p := NewRuleProvider()
	messages := []string{"show laptops under 50000", "add to cart", "pay", "hello world", "order status"}
	ctx := Context{ProductID: "X", OrderID: "O1"}

	for _, m := range messages {
		first, _ := p.Classify(context.Background(), m, ctx)
		second, _ := p.Classify(context.Background(), m, ctx)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("classification of %q not stable: %+v vs %+v", m, first, second)
		}
	}
}

func TestParse(t *testing.T) {
	if Parse("GET_CART") != GetCart {
		t.Error("expected GET_CART")
	}
	if Parse("REFUND") != Unknown {
		t.Error("intent outside the set must be UNKNOWN")
	}
	if Parse("get_cart") != Unknown {
		t.Error("parse is case sensitive")
	}
}
