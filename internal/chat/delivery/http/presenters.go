package http

import (
	"chat-commerce/internal/chat"
	"chat-commerce/internal/model"
)

type chatReq struct {
	Message         string                 `json:"message"`
	ProductID       string                 `json:"productId"`
	Quantity        *int                   `json:"quantity"`
	OrderID         string                 `json:"orderId"`
	ShippingAddress *model.ShippingAddress `json:"shippingAddress"`
}

func (r chatReq) toInput() chat.Input {
	return chat.Input{
		Message:         r.Message,
		ProductID:       r.ProductID,
		Quantity:        r.Quantity,
		OrderID:         r.OrderID,
		ShippingAddress: r.ShippingAddress,
	}
}
