package repository

import (
	"context"

	"chat-commerce/internal/cart"
)

// Repository is the data store of carts and their lines.
type Repository interface {
	ListItems(ctx context.Context, userID string) ([]cart.Item, error)
	UpsertItem(ctx context.Context, opt UpsertItemOptions) error
	DeleteItem(ctx context.Context, userID, productID string) (bool, error)
	ClearItems(ctx context.Context, userID string) error
}
