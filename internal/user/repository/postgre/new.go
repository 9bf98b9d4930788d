package postgre

import (
	"fmt"

	"chat-commerce/config/postgre"
	"chat-commerce/internal/user/repository"
	"chat-commerce/pkg/log"
)

type implRepository struct {
	db postgre.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for users.
func New(db postgre.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/postgre.%s", method)
}
