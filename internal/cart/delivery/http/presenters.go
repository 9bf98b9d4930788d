package http

import (
	"chat-commerce/internal/cart"
)

// --- Request DTOs ---

type addItemReq struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity"`
}

func (r addItemReq) toInput(userID string) cart.AddItemInput {
	qty := 1
	if r.Quantity != nil {
		qty = *r.Quantity
	}
	return cart.AddItemInput{UserID: userID, ProductID: r.ProductID, Quantity: qty}
}

type updateItemReq struct {
	ProductID string `json:"-"`
	Quantity  int    `json:"quantity" binding:"required"`
}

func (r updateItemReq) toInput(userID string) cart.UpdateItemInput {
	return cart.UpdateItemInput{UserID: userID, ProductID: r.ProductID, Quantity: r.Quantity}
}

// --- Response DTOs ---

type productResp struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Image         string   `json:"image"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice"`
	Stock         int      `json:"stock"`
	IsActive      bool     `json:"isActive"`
}

type itemResp struct {
	Product       productResp `json:"product"`
	Quantity      int         `json:"quantity"`
	PriceSnapshot float64     `json:"priceSnapshot"`
}

type cartResp struct {
	Items      []itemResp `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
}

func (h *handler) newCartResp(c cart.Cart) cartResp {
	items := make([]itemResp, len(c.Items))
	for i, it := range c.Items {
		items[i] = itemResp{
			Product: productResp{
				ID:            it.ProductID,
				Name:          it.Name,
				Slug:          it.Slug,
				Image:         it.Image,
				Price:         it.Price,
				DiscountPrice: it.DiscountPrice,
				Stock:         it.Stock,
				IsActive:      it.IsActive,
			},
			Quantity:      it.Quantity,
			PriceSnapshot: it.PriceSnapshot,
		}
	}
	return cartResp{Items: items, TotalPrice: c.TotalPrice}
}
