package usecase

import (
	"context"
	"strings"

	"chat-commerce/internal/model"
	"chat-commerce/internal/user"
	repo "chat-commerce/internal/user/repository"
)

// UpdateProfile changes name, phone or the saved address list. Every saved
// address must be complete.
func (uc *implUseCase) UpdateProfile(ctx context.Context, userID string, input user.UpdateProfileInput) (user.User, error) {
	opt := repo.UpdateUserOptions{ID: userID}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return user.User{}, user.ErrNameRequired
		}
		opt.Name = &name
	}
	if input.Phone != nil {
		phone := strings.TrimSpace(*input.Phone)
		opt.Phone = &phone
	}
	if input.Addresses != nil {
		addrs := make([]model.ShippingAddress, 0, len(*input.Addresses))
		for _, a := range *input.Addresses {
			a = a.Trimmed()
			if err := a.Validate(); err != nil {
				return user.User{}, err
			}
			addrs = append(addrs, a)
		}
		opt.Addresses = &addrs
	}

	u, err := uc.repo.UpdateUser(ctx, opt)
	if err != nil {
		return user.User{}, err
	}
	if u.ID == "" {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}
