package usecase

import (
	"chat-commerce/internal/cart"
	"chat-commerce/internal/catalog"
	"chat-commerce/internal/intent"
	"chat-commerce/internal/order"
	"chat-commerce/internal/payment"
	"chat-commerce/pkg/log"
)

type implUseCase struct {
	classifier intent.Classifier
	catalog    catalog.UseCase
	cart       cart.UseCase
	order      order.UseCase
	payment    payment.UseCase
	l          log.Logger
}

// New creates the chat orchestrator.
func New(
	l log.Logger,
	classifier intent.Classifier,
	catalogUC catalog.UseCase,
	cartUC cart.UseCase,
	orderUC order.UseCase,
	paymentUC payment.UseCase,
) *implUseCase {
	return &implUseCase{
		classifier: classifier,
		catalog:    catalogUC,
		cart:       cartUC,
		order:      orderUC,
		payment:    paymentUC,
		l:          l,
	}
}
