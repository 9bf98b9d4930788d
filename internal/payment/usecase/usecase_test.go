package usecase

import (
	"context"
	"errors"
	"testing"

	"chat-commerce/internal/event"
	"chat-commerce/internal/model"
	"chat-commerce/internal/order"
	"chat-commerce/internal/payment"
	repo "chat-commerce/internal/payment/repository"
	"chat-commerce/pkg/log"
	"chat-commerce/pkg/razorpay"
)

type mockRepo struct {
	upserted *repo.UpsertPaymentOptions
	existing payment.Payment
}

func (m *mockRepo) UpsertPayment(ctx context.Context, opt repo.UpsertPaymentOptions) (payment.Payment, error) {
	m.upserted = &opt
	return payment.Payment{ID: opt.ID, OrderID: opt.OrderID, PaymentID: opt.PaymentID, Status: opt.Status}, nil
}

func (m *mockRepo) GetByOrder(ctx context.Context, orderID string) (payment.Payment, error) {
	return m.existing, nil
}

type mockOrders struct {
	order      order.Order
	err        error
	attached   string
	markCalls  int
	markResult bool
}

func (m *mockOrders) CreateOrder(ctx context.Context, userID string, addr model.ShippingAddress) (order.Order, error) {
	return order.Order{}, nil
}
func (m *mockOrders) GetOrders(ctx context.Context, userID string) ([]order.Order, error) {
	return nil, nil
}
func (m *mockOrders) GetOrderByID(ctx context.Context, userID, orderID string) (order.Order, error) {
	return m.order, m.err
}
func (m *mockOrders) AttachGatewayOrder(ctx context.Context, orderID, gatewayOrderID string) error {
	m.attached = gatewayOrderID
	return nil
}
func (m *mockOrders) MarkPaid(ctx context.Context, orderID string) (bool, error) {
	m.markCalls++
	return m.markResult, nil
}
func (m *mockOrders) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (order.Order, error) {
	if gatewayOrderID != m.order.GatewayOrderID {
		return order.Order{}, order.ErrOrderNotFound
	}
	return m.order, m.err
}

type mockGateway struct {
	req    razorpay.OrderRequest
	sigErr error
}

func (m *mockGateway) CreateOrder(ctx context.Context, req razorpay.OrderRequest) (razorpay.Order, error) {
	m.req = req
	return razorpay.Order{ID: "order_rzp1", Amount: req.Amount, Currency: req.Currency}, nil
}
func (m *mockGateway) VerifyPaymentSignature(gatewayOrderID, paymentID, signature string) error {
	return m.sigErr
}
func (m *mockGateway) KeyID() string { return "rzp_test_key" }

type mockPublisher struct {
	events []event.Event
}

func (m *mockPublisher) Publish(ctx context.Context, e event.Event) error {
	m.events = append(m.events, e)
	return nil
}
func (m *mockPublisher) Close() error { return nil }

func unpaid() order.Order {
	return order.Order{ID: "o1", UserID: "u1", TotalAmount: 209.5, PaymentStatus: order.PaymentPending, GatewayOrderID: "order_rzp1"}
}

func TestCreateCheckoutSession(t *testing.T) {
	orders := &mockOrders{order: unpaid()}
	gw := &mockGateway{}
	uc := New(&mockRepo{}, orders, gw, &mockPublisher{}, Config{}, log.NewNop())

	s, err := uc.CreateCheckoutSession(context.Background(), "o1", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := payment.CheckoutSession{GatewayOrderID: "order_rzp1", KeyID: "rzp_test_key", Amount: 209.5, Currency: "INR", OrderID: "o1"}
	if s != want {
		t.Errorf("expected %+v, got %+v", want, s)
	}
	if gw.req.Amount != 20950 || gw.req.Receipt != "o1" {
		t.Errorf("unexpected gateway request %+v", gw.req)
	}
	if orders.attached != "order_rzp1" {
		t.Errorf("gateway order not attached, got %q", orders.attached)
	}
}

func TestCreateCheckoutSession_Errors(t *testing.T) {
	paid := unpaid()
	paid.PaymentStatus = order.PaymentPaid
	tiny := unpaid()
	tiny.TotalAmount = 0.5

	tests := []struct {
		name    string
		orders  *mockOrders
		gateway razorpay.IRazorpay
		wantErr error
	}{
		{"not found", &mockOrders{err: order.ErrOrderNotFound}, &mockGateway{}, order.ErrOrderNotFound},
		{"already paid", &mockOrders{order: paid}, &mockGateway{}, payment.ErrAlreadyPaid},
		{"too small", &mockOrders{order: tiny}, &mockGateway{}, payment.ErrAmountTooSmall},
		{"no keys", &mockOrders{order: unpaid()}, nil, payment.ErrGatewayNotConfigured},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(&mockRepo{}, tt.orders, tt.gateway, &mockPublisher{}, Config{}, log.NewNop())
			if _, err := uc.CreateCheckoutSession(context.Background(), "o1", "u1"); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestVerifyPayment(t *testing.T) {
	input := payment.VerifyInput{OrderID: "o1", GatewayOrderID: "order_rzp1", PaymentID: "pay_1", Signature: "sig"}

	t.Run("success", func(t *testing.T) {
		r := &mockRepo{}
		orders := &mockOrders{order: unpaid(), markResult: true}
		pub := &mockPublisher{}
		uc := New(r, orders, &mockGateway{}, pub, Config{}, log.NewNop())

		out, err := uc.VerifyPayment(context.Background(), "u1", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AlreadyPaid || !out.Order.IsPaid() {
			t.Errorf("unexpected output %+v", out)
		}
		if r.upserted == nil || r.upserted.PaymentID != "pay_1" || r.upserted.Status != payment.StatusSuccess {
			t.Errorf("unexpected payment record %+v", r.upserted)
		}
		if len(pub.events) != 1 || pub.events[0].Type != event.TypePaymentCaptured || pub.events[0].Source != "verify" {
			t.Errorf("unexpected events %+v", pub.events)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		paid := unpaid()
		paid.PaymentStatus = order.PaymentPaid
		orders := &mockOrders{order: paid}
		uc := New(&mockRepo{existing: payment.Payment{PaymentID: "pay_0"}}, orders, &mockGateway{}, &mockPublisher{}, Config{}, log.NewNop())

		out, err := uc.VerifyPayment(context.Background(), "u1", input)
		if err != nil || !out.AlreadyPaid || out.Payment.PaymentID != "pay_0" {
			t.Fatalf("unexpected result %+v %v", out, err)
		}
		if orders.markCalls != 0 {
			t.Error("paid order must not be marked again")
		}
	})

	errTests := []struct {
		name    string
		input   payment.VerifyInput
		gateway *mockGateway
		wantErr error
	}{
		{"missing fields", payment.VerifyInput{OrderID: "o1"}, &mockGateway{}, payment.ErrMissingFields},
		{"mismatch", payment.VerifyInput{OrderID: "o1", GatewayOrderID: "order_other", PaymentID: "p", Signature: "s"}, &mockGateway{}, payment.ErrOrderMismatch},
		{"bad signature", input, &mockGateway{sigErr: razorpay.ErrInvalidSignature}, payment.ErrInvalidSignature},
	}
	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			orders := &mockOrders{order: unpaid()}
			uc := New(&mockRepo{}, orders, tt.gateway, &mockPublisher{}, Config{}, log.NewNop())
			if _, err := uc.VerifyPayment(context.Background(), "u1", tt.input); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if orders.markCalls != 0 {
				t.Error("order must not be marked paid on failure")
			}
		})
	}
}

func TestHandleWebhook(t *testing.T) {
	const secret = "wh_secret"
	captured := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_9","order_id":"order_rzp1"}}}}`)

	tests := []struct {
		name        string
		payload     []byte
		signature   string
		markResult  bool
		wantErr     error
		wantUpdated bool
		wantIgnored bool
	}{
		{"captured", captured, razorpay.Sign(captured, secret), true, nil, true, false},
		{"duplicate delivery", captured, razorpay.Sign(captured, secret), false, nil, false, false},
		{"bad signature", captured, razorpay.Sign(captured, "other"), false, payment.ErrInvalidSignature, false, false},
		{
			"other event",
			[]byte(`{"event":"payment.failed"}`),
			razorpay.Sign([]byte(`{"event":"payment.failed"}`), secret),
			false, nil, false, true,
		},
		{
			"unknown order",
			[]byte(`{"event":"order.paid","payload":{"order":{"entity":{"id":"order_x"}}}}`),
			razorpay.Sign([]byte(`{"event":"order.paid","payload":{"order":{"entity":{"id":"order_x"}}}}`), secret),
			false, nil, false, true,
		},
		{"not json", []byte(`nope`), razorpay.Sign([]byte(`nope`), secret), false, payment.ErrInvalidWebhook, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := &mockOrders{order: unpaid(), markResult: tt.markResult}
			pub := &mockPublisher{}
			uc := New(&mockRepo{}, orders, nil, pub, Config{WebhookSecret: secret}, log.NewNop())

			res, err := uc.HandleWebhook(context.Background(), tt.payload, tt.signature)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if res.Updated != tt.wantUpdated || res.Ignored != tt.wantIgnored {
				t.Errorf("unexpected result %+v", res)
			}
			if tt.wantUpdated && len(pub.events) != 1 {
				t.Errorf("expected one event, got %d", len(pub.events))
			}
			if !tt.wantUpdated && len(pub.events) != 0 {
				t.Errorf("expected no events, got %+v", pub.events)
			}
		})
	}
}

func TestHandleWebhook_NoSecret(t *testing.T) {
	uc := New(&mockRepo{}, &mockOrders{}, nil, &mockPublisher{}, Config{}, log.NewNop())
	if _, err := uc.HandleWebhook(context.Background(), []byte(`{}`), "ab"); !errors.Is(err, payment.ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
}
