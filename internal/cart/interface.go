package cart

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	GetCart(ctx context.Context, userID string) (Cart, error)
	AddItem(ctx context.Context, input AddItemInput) (Cart, error)
	UpdateItem(ctx context.Context, input UpdateItemInput) (Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (Cart, error)
	Clear(ctx context.Context, userID string) error
}
