package repository

import (
	"context"

	"chat-commerce/internal/catalog"
)

// Repository is the composed interface for the catalog data store.
type Repository interface {
	ProductRepository
	CategoryRepository
}

// ProductRepository defines data access for products.
type ProductRepository interface {
	ListProducts(ctx context.Context, opt ListProductsOptions) ([]catalog.Product, error)
	GetOneProduct(ctx context.Context, opt GetOneProductOptions) (catalog.Product, error)
	UpsertProduct(ctx context.Context, opt UpsertProductOptions) (catalog.Product, error)
}

// CategoryRepository defines data access for categories.
type CategoryRepository interface {
	UpsertCategory(ctx context.Context, opt UpsertCategoryOptions) (catalog.Category, error)
}
