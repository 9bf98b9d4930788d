package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"chat-commerce/internal/model"
	"chat-commerce/internal/order"
	"chat-commerce/pkg/log"
	"chat-commerce/pkg/scope"
)

type mockUseCase struct {
	addr model.ShippingAddress
	out  order.Order
	err  error
}

func (m *mockUseCase) CreateOrder(ctx context.Context, userID string, addr model.ShippingAddress) (order.Order, error) {
	m.addr = addr
	return m.out, m.err
}
func (m *mockUseCase) GetOrders(ctx context.Context, userID string) ([]order.Order, error) {
	return []order.Order{m.out}, m.err
}
func (m *mockUseCase) GetOrderByID(ctx context.Context, userID, orderID string) (order.Order, error) {
	return m.out, m.err
}
func (m *mockUseCase) AttachGatewayOrder(ctx context.Context, orderID, gatewayOrderID string) error {
	return nil
}
func (m *mockUseCase) MarkPaid(ctx context.Context, orderID string) (bool, error) { return false, nil }
func (m *mockUseCase) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (order.Order, error) {
	return order.Order{}, nil
}

func newContext(method, body, userID string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, "/api/v1/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req = req.WithContext(scope.SetScopeToContext(req.Context(), model.Scope{UserID: userID}))
	}
	c.Request = req
	return c, w
}

func TestCreate(t *testing.T) {
	uc := &mockUseCase{out: order.Order{ID: "o1", TotalAmount: 200, OrderStatus: order.StatusPlaced}}
	h := New(log.NewNop(), uc)

	c, w := newContext(http.MethodPost, `{"shippingAddress":{"fullName":"Asha","pincode":"560001"}}`, "u1")
	h.Create(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if uc.addr.FullName != "Asha" || uc.addr.Pincode != "560001" {
		t.Errorf("address not bound: %+v", uc.addr)
	}
	var body struct {
		Data detailResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if body.Data.Order.ID != "o1" || body.Data.Order.OrderStatus != order.StatusPlaced {
		t.Errorf("unexpected body %+v", body.Data)
	}
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		userID string
		err    error
		want   int
	}{
		{"no user", `{}`, "", nil, http.StatusUnauthorized},
		{"no address", `{}`, "u1", nil, http.StatusBadRequest},
		{"address field", `{"shippingAddress":{}}`, "u1", &model.AddressFieldError{Field: "fullName"}, http.StatusBadRequest},
		{"empty cart", `{"shippingAddress":{}}`, "u1", order.ErrCartEmpty, http.StatusBadRequest},
		{"stock", `{"shippingAddress":{}}`, "u1", &order.InsufficientStockError{Name: "Phone", Available: 1}, http.StatusConflict},
		{"db", `{"shippingAddress":{}}`, "u1", context.Canceled, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(log.NewNop(), &mockUseCase{err: tt.err})
			c, w := newContext(http.MethodPost, tt.body, tt.userID)
			h.Create(c)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestDetail_NotFound(t *testing.T) {
	h := New(log.NewNop(), &mockUseCase{err: order.ErrOrderNotFound})
	c, w := newContext(http.MethodGet, "", "u1")
	c.Params = gin.Params{{Key: "id", Value: "o1"}}
	h.Detail(c)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
