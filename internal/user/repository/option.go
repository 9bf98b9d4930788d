package repository

import "chat-commerce/internal/model"

type CreateUserOptions struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
}

// GetOneUserOptions looks a user up by ID or by email. ID wins when both are set.
type GetOneUserOptions struct {
	ID    string
	Email string
}

// UpdateUserOptions leaves nil fields unchanged.
type UpdateUserOptions struct {
	ID        string
	Name      *string
	Phone     *string
	Addresses *[]model.ShippingAddress
}
