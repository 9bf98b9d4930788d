package usecase

import (
	"chat-commerce/internal/cart/repository"
	"chat-commerce/internal/catalog"
	"chat-commerce/pkg/log"
)

// implUseCase is the private implementation of cart.UseCase.
type implUseCase struct {
	repo    repository.Repository
	catalog catalog.UseCase
	l       log.Logger
}

// New creates a new cart UseCase implementation.
func New(repo repository.Repository, catalogUC catalog.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:    repo,
		catalog: catalogUC,
		l:       l,
	}
}
