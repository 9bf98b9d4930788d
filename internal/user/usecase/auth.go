package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"chat-commerce/internal/model"
	"chat-commerce/internal/user"
	repo "chat-commerce/internal/user/repository"
)

func (uc *implUseCase) Signup(ctx context.Context, input user.SignupInput) (user.AuthOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return user.AuthOutput{}, user.ErrFieldsRequired
	}
	if len(input.Password) < minPasswordLength {
		return user.AuthOutput{}, user.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.bcryptCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup GenerateFromPassword: %v", err)
		return user.AuthOutput{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	})
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return user.AuthOutput{}, user.ErrEmailTaken
	}
	if err != nil {
		return user.AuthOutput{}, err
	}

	tokens, err := uc.issue(ctx, u)
	if err != nil {
		return user.AuthOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Signup: created user %s", u.ID)
	return user.AuthOutput{User: u, Tokens: tokens}, nil
}

func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return user.AuthOutput{}, user.ErrFieldsRequired
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		return user.AuthOutput{}, err
	}
	if u.ID == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	tokens, err := uc.issue(ctx, u)
	if err != nil {
		return user.AuthOutput{}, err
	}
	return user.AuthOutput{User: u, Tokens: tokens}, nil
}

// Refresh exchanges a refresh token for a new pair. The user must still exist.
func (uc *implUseCase) Refresh(ctx context.Context, refreshToken string) (user.Tokens, error) {
	sc, err := uc.tokens.VerifyRefresh(strings.TrimSpace(refreshToken))
	if err != nil {
		return user.Tokens{}, user.ErrInvalidRefreshToken
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		return user.Tokens{}, err
	}
	if u.ID == "" {
		return user.Tokens{}, user.ErrInvalidRefreshToken
	}
	return uc.issue(ctx, u)
}

func (uc *implUseCase) Me(ctx context.Context, userID string) (user.User, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: userID})
	if err != nil {
		return user.User{}, err
	}
	if u.ID == "" {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (uc *implUseCase) issue(ctx context.Context, u user.User) (user.Tokens, error) {
	sc := model.Scope{UserID: u.ID, Role: u.Role}

	access, err := uc.tokens.CreateToken(sc)
	if err != nil {
		uc.l.Errorf(ctx, "uc.issue CreateToken: %v", err)
		return user.Tokens{}, err
	}
	refresh, err := uc.tokens.CreateRefreshToken(sc)
	if err != nil {
		uc.l.Errorf(ctx, "uc.issue CreateRefreshToken: %v", err)
		return user.Tokens{}, err
	}
	return user.Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
