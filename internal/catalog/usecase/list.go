package usecase

import (
	"context"
	"strings"

	"chat-commerce/internal/catalog"
	repo "chat-commerce/internal/catalog/repository"
)

// ListAll returns every active product.
func (uc *implUseCase) ListAll(ctx context.Context) ([]catalog.Product, error) {
	products, err := uc.repo.ListProducts(ctx, repo.ListProductsOptions{Limit: maxListSize})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListAll ListProducts: %v", err)
		return nil, err
	}
	return products, nil
}

// SearchWithFilters returns active products matching every set filter.
// Negative price bounds are ignored.
func (uc *implUseCase) SearchWithFilters(ctx context.Context, f catalog.Filters) ([]catalog.Product, error) {
	opt := repo.ListProductsOptions{
		Query:    strings.TrimSpace(f.Query),
		Category: strings.TrimSpace(f.Category),
		MinPrice: nonNegative(f.MinPrice),
		MaxPrice: nonNegative(f.MaxPrice),
		Limit:    maxListSize,
	}
	if opt.MinPrice != nil && opt.MaxPrice != nil && *opt.MinPrice > *opt.MaxPrice {
		return nil, catalog.ErrInvalidPrice
	}

	products, err := uc.repo.ListProducts(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SearchWithFilters ListProducts: %v", err)
		return nil, err
	}
	return products, nil
}

func nonNegative(v *float64) *float64 {
	if v == nil || *v < 0 {
		return nil
	}
	return v
}
