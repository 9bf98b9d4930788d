package usecase

import (
	"context"
	"errors"
	"strings"

	"chat-commerce/internal/chat"
	"chat-commerce/internal/intent"
)

const msgUnknown = "I didn't understand that. You can ask to list products, add to cart, view cart, place order, or checkout."

var unknownSuggestions = []string{"List products", "View cart", "Place order"}

// Route classifies the message and runs the matching handler. Handler errors
// are rendered here and nowhere else.
func (uc *implUseCase) Route(ctx context.Context, userID string, input chat.Input) chat.Response {
	if strings.TrimSpace(userID) == "" {
		return chat.ErrorResponse(chat.MsgUnauthorized)
	}

	res := uc.classifier.Classify(ctx, input.Message, intent.Context{
		ProductID: strings.TrimSpace(input.ProductID),
		OrderID:   strings.TrimSpace(input.OrderID),
	})
	uc.l.Infof(ctx, "chat.Route: user=%s intent=%s", userID, res.Intent)

	out, err := uc.dispatch(ctx, userID, res, input)
	if err != nil {
		uc.l.Warnf(ctx, "chat.Route %s: %v", res.Intent, err)
		return chat.ErrorResponse(err.Error())
	}
	return out
}

func (uc *implUseCase) dispatch(ctx context.Context, userID string, res intent.Result, input chat.Input) (out chat.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "chat.dispatch %s: panic: %v", res.Intent, r)
			out, err = chat.Response{}, errors.New(chat.MsgInternal)
		}
	}()

	switch res.Intent {
	case intent.ListProducts:
		return uc.listProducts(ctx, res.Params)
	case intent.AddToCart:
		return uc.addToCart(ctx, userID, res.Params, input)
	case intent.GetCart:
		return uc.getCart(ctx, userID)
	case intent.PlaceOrder:
		return uc.placeOrder(ctx, userID, input)
	case intent.Checkout:
		return uc.checkout(ctx, userID, res.Params, input)
	case intent.GetOrderStatus:
		return uc.orderStatus(ctx, userID, res.Params, input)
	default:
		return chat.Response{
			Type:        chat.TypeUnknown,
			Message:     msgUnknown,
			Data:        nil,
			Suggestions: unknownSuggestions,
		}, nil
	}
}

// firstNonEmpty returns the explicit request value when set, else the extracted one.
func firstNonEmpty(raw, extracted string) string {
	if v := strings.TrimSpace(raw); v != "" {
		return v
	}
	return strings.TrimSpace(extracted)
}
