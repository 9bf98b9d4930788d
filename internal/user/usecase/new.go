package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"chat-commerce/internal/user/repository"
	"chat-commerce/pkg/log"
	"chat-commerce/pkg/scope"
)

const minPasswordLength = 6

type implUseCase struct {
	repo       repository.Repository
	tokens     scope.Manager
	bcryptCost int
	l          log.Logger
}

// New creates a new user UseCase implementation.
func New(repo repository.Repository, tokens scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		tokens:     tokens,
		bcryptCost: bcrypt.DefaultCost,
		l:          l,
	}
}
