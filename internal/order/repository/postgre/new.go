package postgre

import (
	"fmt"

	"chat-commerce/config/postgre"
	"chat-commerce/internal/order/repository"
	"chat-commerce/pkg/log"
)

type implRepository struct {
	db postgre.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the order domain.
func New(db postgre.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("order/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("order/repository/postgre.%s", method)
}
