package usecase

import (
	"context"
	"errors"
	"testing"

	"chat-commerce/internal/cart"
	"chat-commerce/internal/event"
	"chat-commerce/internal/model"
	"chat-commerce/internal/order"
	repo "chat-commerce/internal/order/repository"
	"chat-commerce/pkg/log"
)

const orderID = "9d7f2a10-3c4b-4f1e-8a2d-5b6c7d8e9f00"

type mockRepo struct {
	created *repo.CreateOrderOptions
	one     order.Order
	list    []order.Order
	getOpt  repo.GetOneOrderOptions
	err     error
}

func (m *mockRepo) CreateOrder(ctx context.Context, opt repo.CreateOrderOptions) (order.Order, error) {
	m.created = &opt
	if m.err != nil {
		return order.Order{}, m.err
	}
	return order.Order{ID: opt.ID, UserID: opt.UserID, Items: opt.Items, TotalAmount: opt.TotalAmount,
		ShippingAddress: opt.ShippingAddress, OrderStatus: order.StatusPlaced, PaymentStatus: order.PaymentPending}, nil
}

func (m *mockRepo) GetOneOrder(ctx context.Context, opt repo.GetOneOrderOptions) (order.Order, error) {
	m.getOpt = opt
	return m.one, m.err
}

func (m *mockRepo) ListOrders(ctx context.Context, opt repo.ListOrdersOptions) ([]order.Order, error) {
	return m.list, m.err
}

func (m *mockRepo) UpdateGatewayOrder(ctx context.Context, orderID, gatewayOrderID string) error {
	return m.err
}

func (m *mockRepo) MarkPaid(ctx context.Context, orderID string) (bool, error) {
	return true, m.err
}

type mockCart struct {
	cart cart.Cart
	err  error
}

func (m *mockCart) GetCart(ctx context.Context, userID string) (cart.Cart, error) { return m.cart, m.err }
func (m *mockCart) AddItem(ctx context.Context, input cart.AddItemInput) (cart.Cart, error) {
	return cart.Cart{}, nil
}
func (m *mockCart) UpdateItem(ctx context.Context, input cart.UpdateItemInput) (cart.Cart, error) {
	return cart.Cart{}, nil
}
func (m *mockCart) RemoveItem(ctx context.Context, userID, productID string) (cart.Cart, error) {
	return cart.Cart{}, nil
}
func (m *mockCart) Clear(ctx context.Context, userID string) error { return nil }

type mockPublisher struct {
	events []event.Event
	err    error
}

func (m *mockPublisher) Publish(ctx context.Context, e event.Event) error {
	m.events = append(m.events, e)
	return m.err
}
func (m *mockPublisher) Close() error { return nil }

var address = model.ShippingAddress{
	FullName: " Asha Rao ", Phone: "9999999999", Address: "12 MG Road",
	City: "Bengaluru", State: "KA", Pincode: "560001",
}

func TestCreateOrder(t *testing.T) {
	items := []cart.Item{
		{ProductID: "p1", Name: "Phone", Quantity: 2, PriceSnapshot: 100, Stock: 5, IsActive: true},
		{ProductID: "p2", Name: "Case", Quantity: 1, PriceSnapshot: 9.5, Stock: 1, IsActive: true},
	}
	r := &mockRepo{}
	pub := &mockPublisher{err: errors.New("broker down")}
	uc := New(r, &mockCart{cart: cart.NewCart("u1", items)}, pub, "INR", log.NewNop())

	o, err := uc.CreateOrder(context.Background(), "u1", address)
	if err != nil {
		t.Fatalf("publish failure must not fail the order: %v", err)
	}
	if o.TotalAmount != 209.5 || len(o.Items) != 2 || o.Items[0].Price != 100 {
		t.Errorf("unexpected order %+v", o)
	}
	if r.created.ShippingAddress.FullName != "Asha Rao" {
		t.Errorf("address must be trimmed, got %q", r.created.ShippingAddress.FullName)
	}
	if o.OrderStatus != order.StatusPlaced || o.PaymentStatus != order.PaymentPending {
		t.Errorf("unexpected statuses %s/%s", o.OrderStatus, o.PaymentStatus)
	}
	if len(pub.events) != 1 || pub.events[0].Type != event.TypeOrderCreated || pub.events[0].OrderID != o.ID {
		t.Errorf("unexpected events %+v", pub.events)
	}
}

func TestCreateOrder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		addr    model.ShippingAddress
		items   []cart.Item
		wantErr string
	}{
		{
			name:    "missing pincode",
			addr:    model.ShippingAddress{FullName: "A", Phone: "1", Address: "x", City: "c", State: "s"},
			wantErr: "Shipping address pincode is required",
		},
		{
			name:    "empty cart",
			addr:    address,
			wantErr: "Cart is empty",
		},
		{
			name:    "insufficient stock",
			addr:    address,
			items:   []cart.Item{{ProductID: "p1", Name: "Phone", Quantity: 3, Stock: 2, IsActive: true}},
			wantErr: "Insufficient stock for Phone. Available: 2",
		},
		{
			name:    "inactive product",
			addr:    address,
			items:   []cart.Item{{ProductID: "p9", Name: "Gone", Quantity: 1, Stock: 2}},
			wantErr: "Product not found: p9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &mockRepo{}
			pub := &mockPublisher{}
			uc := New(r, &mockCart{cart: cart.NewCart("u1", tt.items)}, pub, "INR", log.NewNop())

			_, err := uc.CreateOrder(context.Background(), "u1", tt.addr)
			if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("expected %q, got %v", tt.wantErr, err)
			}
			if r.created != nil || len(pub.events) != 0 {
				t.Error("nothing must be written or published on failure")
			}
		})
	}
}

func TestGetOrderByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := New(&mockRepo{}, &mockCart{}, &mockPublisher{}, "INR", log.NewNop())
		if _, err := uc.GetOrderByID(context.Background(), "u1", "42"); !errors.Is(err, order.ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("other user's order", func(t *testing.T) {
		r := &mockRepo{}
		uc := New(r, &mockCart{}, &mockPublisher{}, "INR", log.NewNop())
		if _, err := uc.GetOrderByID(context.Background(), "u1", orderID); !errors.Is(err, order.ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
		if r.getOpt.UserID != "u1" {
			t.Errorf("lookup must be scoped to the user, got %+v", r.getOpt)
		}
	})

	t.Run("found", func(t *testing.T) {
		uc := New(&mockRepo{one: order.Order{ID: orderID}}, &mockCart{}, &mockPublisher{}, "INR", log.NewNop())
		o, err := uc.GetOrderByID(context.Background(), "u1", orderID)
		if err != nil || o.ID != orderID {
			t.Fatalf("unexpected result %+v %v", o, err)
		}
	})
}

func TestGetOrders_RequiresUser(t *testing.T) {
	uc := New(&mockRepo{}, &mockCart{}, &mockPublisher{}, "INR", log.NewNop())
	if _, err := uc.GetOrders(context.Background(), ""); !errors.Is(err, order.ErrUserRequired) {
		t.Fatalf("expected ErrUserRequired, got %v", err)
	}
}
