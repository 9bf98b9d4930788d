package usecase

import (
	"context"
	"fmt"

	"chat-commerce/internal/cart"
	"chat-commerce/internal/chat"
	"chat-commerce/internal/intent"
)

func (uc *implUseCase) getCart(ctx context.Context, userID string) (chat.Response, error) {
	c, err := uc.cart.GetCart(ctx, userID)
	if err != nil {
		return chat.Response{}, err
	}

	n := len(c.Items)
	if n == 0 {
		return chat.Response{
			Type:        chat.TypeCart,
			Message:     "Your cart is empty.",
			Data:        newCartData(c),
			Suggestions: []string{"Browse products"},
		}, nil
	}
	return chat.Response{
		Type:        chat.TypeCart,
		Message:     fmt.Sprintf("You have %d item(s) in your cart.", n),
		Data:        newCartData(c),
		Suggestions: []string{"Place order", "Continue shopping"},
	}, nil
}

// addToCart prefers the product and quantity the UI sent over extracted ones.
// A request quantity below 1 is ignored.
func (uc *implUseCase) addToCart(ctx context.Context, userID string, p intent.Params, input chat.Input) (chat.Response, error) {
	productID := firstNonEmpty(input.ProductID, p.ProductID)
	if productID == "" {
		return chat.Response{}, chat.ErrProductIDRequired
	}

	qty := 1
	switch {
	case input.Quantity != nil && *input.Quantity >= 1:
		qty = *input.Quantity
	case p.Quantity != nil:
		qty = *p.Quantity
	}

	c, err := uc.cart.AddItem(ctx, cart.AddItemInput{UserID: userID, ProductID: productID, Quantity: qty})
	if err != nil {
		return chat.Response{}, err
	}

	name := "Item"
	if it, ok := c.Find(productID); ok && it.Name != "" {
		name = it.Name
	}

	return chat.Response{
		Type:        chat.TypeCart,
		Message:     fmt.Sprintf("Added %s (qty: %d) to your cart.", name, qty),
		Data:        newCartData(c),
		Suggestions: []string{"View cart", "Place order", "Continue shopping"},
	}, nil
}
