package usecase

import (
	"chat-commerce/internal/cart"
	"chat-commerce/internal/catalog"
	"chat-commerce/internal/chat"
	"chat-commerce/internal/order"
)

func newProductList(products []catalog.Product) []chat.ProductData {
	out := make([]chat.ProductData, len(products))
	for i, p := range products {
		images := p.Images
		if images == nil {
			images = []string{}
		}
		out[i] = chat.ProductData{
			ID:            p.ID,
			Name:          p.Name,
			Slug:          p.Slug,
			Price:         p.Price,
			DiscountPrice: p.DiscountPrice,
			Images:        images,
			Stock:         p.Stock,
			OutOfStock:    p.OutOfStock(),
			Category:      chat.CategoryData{ID: p.Category.ID, Name: p.Category.Name, Slug: p.Category.Slug},
		}
	}
	return out
}

func newCartData(c cart.Cart) chat.CartData {
	items := make([]chat.CartItemData, len(c.Items))
	for i, it := range c.Items {
		items[i] = chat.CartItemData{
			Product: chat.CartProductData{
				ID:            it.ProductID,
				Name:          it.Name,
				Slug:          it.Slug,
				Image:         it.Image,
				Price:         it.Price,
				DiscountPrice: it.DiscountPrice,
				Stock:         it.Stock,
			},
			Quantity:      it.Quantity,
			PriceSnapshot: it.PriceSnapshot,
		}
	}
	return chat.CartData{Items: items, TotalPrice: c.TotalPrice}
}

func newOrderData(o order.Order) chat.OrderData {
	items := make([]chat.OrderItemData, len(o.Items))
	for i, it := range o.Items {
		items[i] = chat.OrderItemData{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}
	return chat.OrderData{
		OrderID:         o.ID,
		TotalAmount:     o.TotalAmount,
		Items:           items,
		ShippingAddress: o.ShippingAddress,
		OrderStatus:     o.OrderStatus,
		PaymentStatus:   o.PaymentStatus,
	}
}
