package postgre

import (
	"fmt"

	"chat-commerce/config/postgre"
	"chat-commerce/internal/cart/repository"
	"chat-commerce/pkg/log"
)

type implRepository struct {
	db postgre.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the cart domain.
func New(db postgre.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("cart/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("cart/repository/postgre.%s", method)
}
