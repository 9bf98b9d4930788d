package catalog

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	ListAll(ctx context.Context) ([]Product, error)
	SearchWithFilters(ctx context.Context, f Filters) ([]Product, error)
	Detail(ctx context.Context, id string) (Product, error)
}
