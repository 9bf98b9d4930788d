package user

import "errors"

var (
	ErrFieldsRequired      = errors.New("All fields are required")
	ErrEmailTaken          = errors.New("Email already registered")
	ErrPasswordTooShort    = errors.New("Password must be at least 6 characters")
	ErrInvalidCredentials  = errors.New("Invalid email or password")
	ErrInvalidRefreshToken = errors.New("Invalid refresh token")
	ErrUserNotFound        = errors.New("User not found")
	ErrNameRequired        = errors.New("Name cannot be empty")
)
