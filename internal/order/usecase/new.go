package usecase

import (
	"chat-commerce/internal/cart"
	"chat-commerce/internal/event"
	"chat-commerce/internal/order/repository"
	"chat-commerce/pkg/log"
)

// maxListedOrders caps the order history returned at once.
const maxListedOrders = 50

// implUseCase is the private implementation of order.UseCase.
type implUseCase struct {
	repo      repository.Repository
	cart      cart.UseCase
	publisher event.Publisher
	currency  string
	l         log.Logger
}

// New creates a new order UseCase implementation.
func New(repo repository.Repository, cartUC cart.UseCase, publisher event.Publisher, currency string, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		cart:      cartUC,
		publisher: publisher,
		currency:  currency,
		l:         l,
	}
}
