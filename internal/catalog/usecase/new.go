package usecase

import (
	"chat-commerce/internal/catalog/repository"
	"chat-commerce/pkg/log"
)

// maxListSize caps a single listing so a chat answer stays readable.
const maxListSize = 100

// implUseCase is the private implementation of catalog.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new catalog UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
