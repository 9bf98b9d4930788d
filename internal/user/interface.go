package user

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Signup(ctx context.Context, input SignupInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (Tokens, error)
	Me(ctx context.Context, userID string) (User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (User, error)
}
