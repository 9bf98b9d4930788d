package postgre

import (
	"fmt"

	"chat-commerce/config/postgre"
	"chat-commerce/internal/payment/repository"
	"chat-commerce/pkg/log"
)

type implRepository struct {
	db postgre.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for payment records.
func New(db postgre.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("payment/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("payment/repository/postgre.%s", method)
}
