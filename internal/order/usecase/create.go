package usecase

import (
	"context"

	"github.com/google/uuid"

	"chat-commerce/internal/event"
	"chat-commerce/internal/model"
	"chat-commerce/internal/order"
	repo "chat-commerce/internal/order/repository"
)

// CreateOrder turns the user's cart into an order. Stock is decremented and
// the cart cleared atomically; order.created is published afterwards.
func (uc *implUseCase) CreateOrder(ctx context.Context, userID string, addr model.ShippingAddress) (order.Order, error) {
	if userID == "" {
		return order.Order{}, order.ErrUserRequired
	}
	addr = addr.Trimmed()
	if err := addr.Validate(); err != nil {
		return order.Order{}, err
	}

	c, err := uc.cart.GetCart(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateOrder GetCart: %v", err)
		return order.Order{}, err
	}
	if len(c.Items) == 0 {
		return order.Order{}, order.ErrCartEmpty
	}

	items := make([]order.Item, 0, len(c.Items))
	for _, it := range c.Items {
		if !it.IsActive {
			return order.Order{}, &order.ProductUnavailableError{ProductID: it.ProductID}
		}
		if it.Stock < it.Quantity {
			return order.Order{}, &order.InsufficientStockError{Name: it.Name, Available: it.Stock}
		}
		items = append(items, order.Item{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.PriceSnapshot,
			Quantity:  it.Quantity,
		})
	}

	o, err := uc.repo.CreateOrder(ctx, repo.CreateOrderOptions{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           items,
		TotalAmount:     c.TotalPrice,
		ShippingAddress: addr,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.CreateOrder CreateOrder: %v", err)
		return order.Order{}, err
	}

	if err := uc.publisher.Publish(ctx, event.Event{
		Type:     event.TypeOrderCreated,
		OrderID:  o.ID,
		UserID:   userID,
		Amount:   o.TotalAmount,
		Currency: uc.currency,
	}); err != nil {
		uc.l.Warnf(ctx, "uc.CreateOrder Publish: %v", err)
	}

	return o, nil
}
