package usecase

import (
	"context"

	"github.com/google/uuid"

	"chat-commerce/internal/catalog"
	repo "chat-commerce/internal/catalog/repository"
)

// Detail retrieves an active product by ID. Returns ErrProductNotFound when
// missing or inactive.
func (uc *implUseCase) Detail(ctx context.Context, id string) (catalog.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return catalog.Product{}, catalog.ErrInvalidID
	}

	p, err := uc.repo.GetOneProduct(ctx, repo.GetOneProductOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneProduct: %v", err)
		return catalog.Product{}, err
	}
	if p.ID == "" || !p.IsActive {
		return catalog.Product{}, catalog.ErrProductNotFound
	}
	return p, nil
}
