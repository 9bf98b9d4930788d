package user

import (
	"time"

	"chat-commerce/internal/model"
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Phone        string
	Addresses    []model.ShippingAddress
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type Tokens struct {
	AccessToken  string
	RefreshToken string
}

type AuthOutput struct {
	User   User
	Tokens Tokens
}

// UpdateProfileInput changes only the fields that are set. Addresses, when
// set, replaces the whole saved list.
type UpdateProfileInput struct {
	Name      *string
	Phone     *string
	Addresses *[]model.ShippingAddress
}
