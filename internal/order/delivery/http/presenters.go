package http

import (
	"time"

	"chat-commerce/internal/model"
	"chat-commerce/internal/order"
)

// --- Request DTOs ---

type createReq struct {
	ShippingAddress *model.ShippingAddress `json:"shippingAddress"`
}

// --- Response DTOs ---

type itemResp struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type orderResp struct {
	ID              string                `json:"id"`
	Items           []itemResp            `json:"items"`
	TotalAmount     float64               `json:"totalAmount"`
	ShippingAddress model.ShippingAddress `json:"shippingAddress"`
	OrderStatus     string                `json:"orderStatus"`
	PaymentStatus   string                `json:"paymentStatus"`
	GatewayOrderID  string                `json:"razorpayOrderId,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
}

func newOrderResp(o order.Order) orderResp {
	items := make([]itemResp, len(o.Items))
	for i, it := range o.Items {
		items[i] = itemResp{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}
	return orderResp{
		ID:              o.ID,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		OrderStatus:     o.OrderStatus,
		PaymentStatus:   o.PaymentStatus,
		GatewayOrderID:  o.GatewayOrderID,
		CreatedAt:       o.CreatedAt,
	}
}

type detailResp struct {
	Order orderResp `json:"order"`
}

type listResp struct {
	Orders []orderResp `json:"orders"`
}

func (h *handler) newListResp(orders []order.Order) listResp {
	out := make([]orderResp, len(orders))
	for i, o := range orders {
		out[i] = newOrderResp(o)
	}
	return listResp{Orders: out}
}
