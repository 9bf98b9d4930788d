package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"chat-commerce/internal/cart"
	"chat-commerce/internal/catalog"
	"chat-commerce/internal/chat"
	"chat-commerce/internal/intent"
	"chat-commerce/internal/model"
	"chat-commerce/internal/order"
	"chat-commerce/internal/payment"
	"chat-commerce/pkg/log"
)

type stubClassifier struct {
	result intent.Result
	calls  int
	hint   intent.Context
}

func (s *stubClassifier) Classify(ctx context.Context, message string, c intent.Context) intent.Result {
	s.calls++
	s.hint = c
	return s.result
}

type mockCatalog struct {
	products    []catalog.Product
	filters     *catalog.Filters
	listCalls   int
	searchCalls int
	err         error
}

func (m *mockCatalog) ListAll(ctx context.Context) ([]catalog.Product, error) {
	m.listCalls++
	return m.products, m.err
}
func (m *mockCatalog) SearchWithFilters(ctx context.Context, f catalog.Filters) ([]catalog.Product, error) {
	m.searchCalls++
	m.filters = &f
	return m.products, m.err
}
func (m *mockCatalog) Detail(ctx context.Context, id string) (catalog.Product, error) {
	return catalog.Product{}, m.err
}

type mockCart struct {
	cart     cart.Cart
	addInput *cart.AddItemInput
	calls    int
	err      error
	panicMsg string
}

func (m *mockCart) GetCart(ctx context.Context, userID string) (cart.Cart, error) {
	m.calls++
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	return m.cart, m.err
}
func (m *mockCart) AddItem(ctx context.Context, input cart.AddItemInput) (cart.Cart, error) {
	m.calls++
	m.addInput = &input
	return m.cart, m.err
}
func (m *mockCart) UpdateItem(ctx context.Context, input cart.UpdateItemInput) (cart.Cart, error) {
	return cart.Cart{}, nil
}
func (m *mockCart) RemoveItem(ctx context.Context, userID, productID string) (cart.Cart, error) {
	return cart.Cart{}, nil
}
func (m *mockCart) Clear(ctx context.Context, userID string) error { return nil }

type mockOrder struct {
	order      order.Order
	orders     []order.Order
	getByIDArg string
	listCalls  int
	createAddr *model.ShippingAddress
	err        error
}

func (m *mockOrder) CreateOrder(ctx context.Context, userID string, addr model.ShippingAddress) (order.Order, error) {
	m.createAddr = &addr
	return m.order, m.err
}
func (m *mockOrder) GetOrders(ctx context.Context, userID string) ([]order.Order, error) {
	m.listCalls++
	return m.orders, m.err
}
func (m *mockOrder) GetOrderByID(ctx context.Context, userID, orderID string) (order.Order, error) {
	m.getByIDArg = orderID
	return m.order, m.err
}
func (m *mockOrder) AttachGatewayOrder(ctx context.Context, orderID, gatewayOrderID string) error {
	return nil
}
func (m *mockOrder) MarkPaid(ctx context.Context, orderID string) (bool, error) { return false, nil }
func (m *mockOrder) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (order.Order, error) {
	return order.Order{}, nil
}

type mockPayment struct {
	orderID string
	err     error
}

func (m *mockPayment) CreateCheckoutSession(ctx context.Context, orderID, userID string) (payment.CheckoutSession, error) {
	m.orderID = orderID
	return payment.CheckoutSession{GatewayOrderID: "order_rzp1", KeyID: "k", Amount: 209.5, Currency: "INR", OrderID: orderID}, m.err
}
func (m *mockPayment) VerifyPayment(ctx context.Context, userID string, input payment.VerifyInput) (payment.VerifyOutput, error) {
	return payment.VerifyOutput{}, nil
}
func (m *mockPayment) HandleWebhook(ctx context.Context, payload []byte, signature string) (payment.WebhookResult, error) {
	return payment.WebhookResult{}, nil
}

type deps struct {
	catalog *mockCatalog
	cart    *mockCart
	order   *mockOrder
	payment *mockPayment
}

func newDeps() deps {
	return deps{catalog: &mockCatalog{}, cart: &mockCart{}, order: &mockOrder{}, payment: &mockPayment{}}
}

func (d deps) useCase(c intent.Classifier) *implUseCase {
	return New(log.NewNop(), c, d.catalog, d.cart, d.order, d.payment)
}

// rulesOnly is the classifier the service runs with no model configured.
func rulesOnly() intent.Classifier {
	return intent.New(log.NewNop(), nil, 0)
}

func intPtr(i int) *int { return &i }

func TestRoute_Unauthenticated(t *testing.T) {
	d := newDeps()
	cls := &stubClassifier{result: intent.Result{Intent: intent.GetCart}}

	got := d.useCase(cls).Route(context.Background(), "", chat.Input{Message: "view cart"})

	want := chat.Response{Type: chat.TypeError, Message: "Unauthorized. Please log in.", Data: nil}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if cls.calls != 0 || d.cart.calls != 0 {
		t.Error("nothing must be classified or dispatched without a user")
	}
}

func TestRoute_HandlerErrorIsNormalized(t *testing.T) {
	d := newDeps()
	d.cart.err = errors.New("DB connection failed")

	got := d.useCase(rulesOnly()).Route(context.Background(), "u1", chat.Input{Message: "view cart"})

	want := chat.Response{Type: "error", Message: "DB connection failed", Data: nil}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestRoute_PanicIsNormalized(t *testing.T) {
	d := newDeps()
	d.cart.panicMsg = "nil map"

	got := d.useCase(rulesOnly()).Route(context.Background(), "u1", chat.Input{Message: "view cart"})
	if got.Type != chat.TypeError || got.Message != chat.MsgInternal || got.Data != nil {
		t.Errorf("unexpected response %+v", got)
	}
}

func TestRoute_Unknown(t *testing.T) {
	d := newDeps()
	for _, msg := range []string{"hello world", "   "} {
		got := d.useCase(rulesOnly()).Route(context.Background(), "u1", chat.Input{Message: msg})
		if got.Type != chat.TypeUnknown || got.Data != nil {
			t.Errorf("%q: unexpected response %+v", msg, got)
		}
		if !reflect.DeepEqual(got.Suggestions, []string{"List products", "View cart", "Place order"}) {
			t.Errorf("%q: unexpected suggestions %v", msg, got.Suggestions)
		}
	}
}

func TestRoute_PassesContextToClassifier(t *testing.T) {
	d := newDeps()
	cls := &stubClassifier{result: intent.Result{Intent: intent.Unknown}}

	d.useCase(cls).Route(context.Background(), "u1", chat.Input{Message: "x", ProductID: " p1 ", OrderID: "o1"})
	if cls.hint != (intent.Context{ProductID: "p1", OrderID: "o1"}) {
		t.Errorf("unexpected hint %+v", cls.hint)
	}
}

func TestListProducts(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		products   []catalog.Product
		wantSearch bool
		wantMsg    string
	}{
		{"all", "show products", []catalog.Product{{ID: "p1"}, {ID: "p2"}}, false, "Here are our products (2 total)."},
		{"filtered", "show laptops under 50000", []catalog.Product{{ID: "p1"}}, true, "Here are 1 product(s) matching your search."},
		{"none", "show laptops under 50000", nil, true, "No products found matching your criteria."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			d.catalog.products = tt.products

			got := d.useCase(rulesOnly()).Route(context.Background(), "u1", chat.Input{Message: tt.message})
			if got.Type != chat.TypeProductList || got.Message != tt.wantMsg {
				t.Fatalf("unexpected response %+v", got)
			}
			if (d.catalog.searchCalls == 1) != tt.wantSearch || d.catalog.searchCalls+d.catalog.listCalls != 1 {
				t.Errorf("search=%d list=%d", d.catalog.searchCalls, d.catalog.listCalls)
			}
			if tt.wantSearch && (d.catalog.filters.MaxPrice == nil || *d.catalog.filters.MaxPrice != 50000) {
				t.Errorf("unexpected filters %+v", d.catalog.filters)
			}
		})
	}
}

func TestListProducts_DropsNegativePrices(t *testing.T) {
	d := newDeps()
	neg := -5.0
	cls := &stubClassifier{result: intent.Result{Intent: intent.ListProducts, Params: intent.Params{MinPrice: &neg}}}

	d.useCase(cls).Route(context.Background(), "u1", chat.Input{Message: "x"})
	if d.catalog.listCalls != 1 || d.catalog.searchCalls != 0 {
		t.Error("a negative price alone must not count as a filter")
	}
}

func TestAddToCart(t *testing.T) {
	added := cart.NewCart("u1", []cart.Item{{ProductID: "X", Name: "Phone", Quantity: 2, PriceSnapshot: 10}})

	tests := []struct {
		name    string
		input   chat.Input
		params  intent.Params
		wantQty int
		wantPID string
	}{
		{"context product", chat.Input{Message: "add to cart", ProductID: "X"}, intent.Params{}, 1, "X"},
		{"request quantity", chat.Input{Message: "add", ProductID: "X", Quantity: intPtr(2)}, intent.Params{Quantity: intPtr(5)}, 2, "X"},
		{"invalid request quantity", chat.Input{Message: "add", ProductID: "X", Quantity: intPtr(0)}, intent.Params{Quantity: intPtr(3)}, 3, "X"},
		{"extracted product", chat.Input{Message: "add"}, intent.Params{ProductID: "X"}, 1, "X"},
		{"request product wins", chat.Input{Message: "add", ProductID: "X"}, intent.Params{ProductID: "Y"}, 1, "X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			d.cart.cart = added
			cls := &stubClassifier{result: intent.Result{Intent: intent.AddToCart, Params: tt.params}}

			got := d.useCase(cls).Route(context.Background(), "u1", tt.input)
			if got.Type != chat.TypeCart {
				t.Fatalf("unexpected response %+v", got)
			}
			want := cart.AddItemInput{UserID: "u1", ProductID: tt.wantPID, Quantity: tt.wantQty}
			if *d.cart.addInput != want {
				t.Errorf("expected %+v, got %+v", want, *d.cart.addInput)
			}
		})
	}
}

func TestAddToCart_EndToEndWithRules(t *testing.T) {
	d := newDeps()
	d.cart.cart = cart.NewCart("u1", []cart.Item{{ProductID: "X", Name: "Phone", Quantity: 1, PriceSnapshot: 10}})

	got := d.useCase(rulesOnly()).Route(context.Background(), "u1", chat.Input{Message: "add to cart", ProductID: "X"})
	if got.Message != "Added Phone (qty: 1) to your cart." {
		t.Errorf("unexpected message %q", got.Message)
	}
	data, ok := got.Data.(chat.CartData)
	if !ok || len(data.Items) != 1 || data.TotalPrice != 10 {
		t.Errorf("unexpected data %+v", got.Data)
	}
}

func TestAddToCart_RequiresProduct(t *testing.T) {
	d := newDeps()

	got := d.useCase(rulesOnly()).Route(context.Background(), "u1", chat.Input{Message: "add to cart"})
	if got.Type != chat.TypeError || got.Message != chat.ErrProductIDRequired.Error() {
		t.Fatalf("unexpected response %+v", got)
	}
	if d.cart.calls != 0 {
		t.Error("cart service must not be called without a product id")
	}
}

func TestGetCart(t *testing.T) {
	d := newDeps()
	d.cart.cart = cart.NewCart("u1", nil)

	got := d.useCase(rulesOnly()).Route(context.Background(), "u1", chat.Input{Message: "view cart"})
	if got.Message != "Your cart is empty." || !reflect.DeepEqual(got.Suggestions, []string{"Browse products"}) {
		t.Errorf("unexpected response %+v", got)
	}

	d.cart.cart = cart.NewCart("u1", []cart.Item{{ProductID: "a", Quantity: 1}, {ProductID: "b", Quantity: 3}})
	got = d.useCase(rulesOnly()).Route(context.Background(), "u1", chat.Input{Message: "my cart"})
	if got.Message != "You have 2 item(s) in your cart." {
		t.Errorf("unexpected message %q", got.Message)
	}
}

func TestPlaceOrder(t *testing.T) {
	addr := &model.ShippingAddress{FullName: "Asha", Phone: "1", Address: "x", City: "c", State: "s", Pincode: "5"}

	t.Run("requires address", func(t *testing.T) {
		d := newDeps()
		got := d.useCase(rulesOnly()).Route(context.Background(), "u1", chat.Input{Message: "place order"})
		if got.Type != chat.TypeError || got.Message != chat.ErrShippingAddressRequired.Error() {
			t.Fatalf("unexpected response %+v", got)
		}
		if d.order.createAddr != nil {
			t.Error("order service must not be called")
		}
	})

	t.Run("created", func(t *testing.T) {
		d := newDeps()
		d.order.order = order.Order{ID: "o1", TotalAmount: 20}
		got := d.useCase(rulesOnly()).Route(context.Background(), "u1", chat.Input{Message: "place order", ShippingAddress: addr})
		if got.Type != chat.TypeOrderCreated || got.Message != "Order placed successfully. Order ID: o1. You can proceed to checkout." {
			t.Fatalf("unexpected response %+v", got)
		}
	})

	t.Run("domain error propagates", func(t *testing.T) {
		d := newDeps()
		d.order.err = order.ErrCartEmpty
		got := d.useCase(rulesOnly()).Route(context.Background(), "u1", chat.Input{Message: "order now", ShippingAddress: addr})
		if got.Type != chat.TypeError || got.Message != "Cart is empty" {
			t.Fatalf("unexpected response %+v", got)
		}
	})
}

func TestCheckout(t *testing.T) {
	t.Run("context order id", func(t *testing.T) {
		d := newDeps()
		got := d.useCase(rulesOnly()).Route(context.Background(), "u1", chat.Input{Message: "pay", OrderID: "O1"})
		if got.Type != chat.TypeCheckoutReady || d.payment.orderID != "O1" {
			t.Fatalf("unexpected response %+v (order %q)", got, d.payment.orderID)
		}
		data := got.Data.(chat.CheckoutData)
		if data.RazorpayOrderID != "order_rzp1" || data.OrderID != "O1" || data.Amount != 209.5 {
			t.Errorf("unexpected data %+v", data)
		}
	})

	t.Run("requires order id", func(t *testing.T) {
		d := newDeps()
		got := d.useCase(rulesOnly()).Route(context.Background(), "u1", chat.Input{Message: "checkout"})
		if got.Message != chat.ErrOrderIDRequired.Error() || d.payment.orderID != "" {
			t.Fatalf("unexpected response %+v", got)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		d := newDeps()
		d.payment.err = payment.ErrAlreadyPaid
		got := d.useCase(rulesOnly()).Route(context.Background(), "u1", chat.Input{Message: "pay", OrderID: "O1"})
		if got.Type != chat.TypeError || got.Message != "Order is already paid" {
			t.Fatalf("unexpected response %+v", got)
		}
	})
}

func TestOrderStatus(t *testing.T) {
	t.Run("single order", func(t *testing.T) {
		d := newDeps()
		d.order.order = order.Order{ID: "o1", OrderStatus: "PLACED", PaymentStatus: "PAID"}
		cls := &stubClassifier{result: intent.Result{Intent: intent.GetOrderStatus, Params: intent.Params{OrderID: "o1"}}}

		got := d.useCase(cls).Route(context.Background(), "u1", chat.Input{Message: "order status"})
		if got.Message != "Order o1: PLACED, Payment: PAID." || d.order.getByIDArg != "o1" {
			t.Fatalf("unexpected response %+v", got)
		}
	})

	t.Run("no orders", func(t *testing.T) {
		d := newDeps()
		got := d.useCase(rulesOnly()).Route(context.Background(), "u1", chat.Input{Message: "order status"})
		if got.Type != chat.TypeOrderConfirmed || got.Message != "You have no orders yet." || d.order.listCalls != 1 {
			t.Fatalf("unexpected response %+v", got)
		}
	})

	t.Run("recent orders", func(t *testing.T) {
		d := newDeps()
		d.order.orders = []order.Order{{ID: "o2"}, {ID: "o1"}}
		got := d.useCase(rulesOnly()).Route(context.Background(), "u1", chat.Input{Message: "track order"})
		if got.Message != "You have 2 order(s)." {
			t.Fatalf("unexpected response %+v", got)
		}
		if data := got.Data.(chat.OrderListData); len(data.Orders) != 2 || data.Orders[0].OrderID != "o2" {
			t.Errorf("unexpected data %+v", data)
		}
	})
}
