package postgre

import (
	"reflect"
	"testing"

	repo "chat-commerce/internal/catalog/repository"
)

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}
	lo, hi := 100.0, 500.0

	tests := []struct {
		name     string
		opt      repo.ListProductsOptions
		wantMods string
		wantArgs []any
	}{
		{
			name:     "active only",
			opt:      repo.ListProductsOptions{},
			wantMods: "WHERE p.is_active = TRUE ORDER BY p.created_at DESC",
		},
		{
			name: "all filters",
			opt:  repo.ListProductsOptions{Query: "50%_off", Category: "phones", MinPrice: &lo, MaxPrice: &hi, Limit: 20},
			wantMods: "WHERE p.is_active = TRUE AND (p.name ILIKE $1 OR p.description ILIKE $1)" +
				" AND (LOWER(c.slug) = LOWER($2) OR LOWER(c.name) = LOWER($2))" +
				" AND COALESCE(p.discount_price, p.price) >= $3" +
				" AND COALESCE(p.discount_price, p.price) <= $4" +
				" ORDER BY p.created_at DESC LIMIT $5",
			wantArgs: []any{`%50\%\_off%`, "phones", 100.0, 500.0, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mods, args := r.buildListQuery(tt.opt)
			if mods != tt.wantMods {
				t.Errorf("mods:\n got  %s\n want %s", mods, tt.wantMods)
			}
			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("args: got %#v, want %#v", args, tt.wantArgs)
			}
		})
	}
}

func TestBuildGetOneQuery(t *testing.T) {
	r := &implRepository{}

	mods, args := r.buildGetOneQuery(repo.GetOneProductOptions{ID: "p1", Slug: "phone"})
	if mods != "p.id = $1 AND p.slug = $2" || len(args) != 2 {
		t.Errorf("unexpected query %q %v", mods, args)
	}

	mods, _ = r.buildGetOneQuery(repo.GetOneProductOptions{})
	if mods != "1=1" {
		t.Errorf("empty options should match all, got %q", mods)
	}
}
