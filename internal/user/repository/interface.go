package repository

import (
	"context"

	"chat-commerce/internal/user"
)

type Repository interface {
	// CreateUser returns ErrDuplicateEmail when the email is taken.
	CreateUser(ctx context.Context, opt CreateUserOptions) (user.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
	// UpdateUser returns a zero-value User when the id does not exist.
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (user.User, error)
}
