package usecase

import (
	"context"

	"github.com/google/uuid"

	"chat-commerce/internal/cart"
	repo "chat-commerce/internal/cart/repository"
	"chat-commerce/internal/catalog"
)

// GetCart returns the user's cart; a user without one gets an empty cart.
func (uc *implUseCase) GetCart(ctx context.Context, userID string) (cart.Cart, error) {
	if userID == "" {
		return cart.Cart{}, cart.ErrUserRequired
	}
	items, err := uc.repo.ListItems(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetCart ListItems: %v", err)
		return cart.Cart{}, err
	}
	return cart.NewCart(userID, items), nil
}

// AddItem adds quantity of a product, merging with an existing line. The
// merged quantity must fit the stock. An existing line keeps its snapshot price.
func (uc *implUseCase) AddItem(ctx context.Context, input cart.AddItemInput) (cart.Cart, error) {
	if input.UserID == "" {
		return cart.Cart{}, cart.ErrUserRequired
	}
	if _, err := uuid.Parse(input.ProductID); err != nil {
		return cart.Cart{}, catalog.ErrInvalidID
	}
	if input.Quantity < 1 {
		return cart.Cart{}, cart.ErrInvalidQuantity
	}

	product, err := uc.catalog.Detail(ctx, input.ProductID)
	if err != nil {
		return cart.Cart{}, err
	}

	current, err := uc.GetCart(ctx, input.UserID)
	if err != nil {
		return cart.Cart{}, err
	}

	qty := input.Quantity
	snapshot := product.UnitPrice()
	if existing, ok := current.Find(input.ProductID); ok {
		qty += existing.Quantity
		snapshot = existing.PriceSnapshot
	}
	if product.Stock < qty {
		return cart.Cart{}, &cart.StockError{Available: product.Stock}
	}

	if err := uc.repo.UpsertItem(ctx, repo.UpsertItemOptions{
		UserID:        input.UserID,
		ProductID:     input.ProductID,
		Quantity:      qty,
		PriceSnapshot: snapshot,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.AddItem UpsertItem: %v", err)
		return cart.Cart{}, err
	}

	return uc.GetCart(ctx, input.UserID)
}

// UpdateItem sets the quantity of an existing line and refreshes its price.
func (uc *implUseCase) UpdateItem(ctx context.Context, input cart.UpdateItemInput) (cart.Cart, error) {
	if input.UserID == "" {
		return cart.Cart{}, cart.ErrUserRequired
	}
	if _, err := uuid.Parse(input.ProductID); err != nil {
		return cart.Cart{}, catalog.ErrInvalidID
	}
	if input.Quantity < 1 {
		return cart.Cart{}, cart.ErrInvalidQuantity
	}

	current, err := uc.GetCart(ctx, input.UserID)
	if err != nil {
		return cart.Cart{}, err
	}
	if _, ok := current.Find(input.ProductID); !ok {
		return cart.Cart{}, cart.ErrNotInCart
	}

	product, err := uc.catalog.Detail(ctx, input.ProductID)
	if err != nil {
		return cart.Cart{}, err
	}
	if product.Stock < input.Quantity {
		return cart.Cart{}, &cart.StockError{Available: product.Stock}
	}

	if err := uc.repo.UpsertItem(ctx, repo.UpsertItemOptions{
		UserID:        input.UserID,
		ProductID:     input.ProductID,
		Quantity:      input.Quantity,
		PriceSnapshot: product.UnitPrice(),
	}); err != nil {
		uc.l.Errorf(ctx, "uc.UpdateItem UpsertItem: %v", err)
		return cart.Cart{}, err
	}

	return uc.GetCart(ctx, input.UserID)
}

// RemoveItem deletes a line. Returns ErrNotInCart when it does not exist.
func (uc *implUseCase) RemoveItem(ctx context.Context, userID, productID string) (cart.Cart, error) {
	if userID == "" {
		return cart.Cart{}, cart.ErrUserRequired
	}
	if _, err := uuid.Parse(productID); err != nil {
		return cart.Cart{}, catalog.ErrInvalidID
	}

	removed, err := uc.repo.DeleteItem(ctx, userID, productID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RemoveItem DeleteItem: %v", err)
		return cart.Cart{}, err
	}
	if !removed {
		return cart.Cart{}, cart.ErrNotInCart
	}

	return uc.GetCart(ctx, userID)
}

// Clear empties the user's cart.
func (uc *implUseCase) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return cart.ErrUserRequired
	}
	if err := uc.repo.ClearItems(ctx, userID); err != nil {
		uc.l.Errorf(ctx, "uc.Clear ClearItems: %v", err)
		return err
	}
	return nil
}
