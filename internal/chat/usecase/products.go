package usecase

import (
	"context"
	"fmt"
	"strings"

	"chat-commerce/internal/catalog"
	"chat-commerce/internal/chat"
	"chat-commerce/internal/intent"
)

func (uc *implUseCase) listProducts(ctx context.Context, p intent.Params) (chat.Response, error) {
	f := catalog.Filters{
		Query:    strings.TrimSpace(p.Query),
		Category: strings.TrimSpace(p.Category),
		MinPrice: nonNegative(p.MinPrice),
		MaxPrice: nonNegative(p.MaxPrice),
	}

	var (
		products []catalog.Product
		err      error
	)
	if f.HasAny() {
		products, err = uc.catalog.SearchWithFilters(ctx, f)
	} else {
		products, err = uc.catalog.ListAll(ctx)
	}
	if err != nil {
		return chat.Response{}, err
	}

	var msg string
	switch {
	case len(products) == 0:
		msg = "No products found matching your criteria."
	case f.HasAny():
		msg = fmt.Sprintf("Here are %d product(s) matching your search.", len(products))
	default:
		msg = fmt.Sprintf("Here are our products (%d total).", len(products))
	}

	return chat.Response{
		Type:        chat.TypeProductList,
		Message:     msg,
		Data:        newProductList(products),
		Suggestions: []string{"Add to cart", "View details"},
	}, nil
}

func nonNegative(v *float64) *float64 {
	if v == nil || *v < 0 {
		return nil
	}
	return v
}
