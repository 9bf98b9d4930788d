package repository

// ListProductsOptions filters the product listing. Only active products are
// ever returned.
type ListProductsOptions struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Limit    int
}

// GetOneProductOptions holds filters for fetching a single product (AND).
type GetOneProductOptions struct {
	ID   string
	Slug string
}

// UpsertCategoryOptions inserts a category or updates it by slug.
type UpsertCategoryOptions struct {
	Name string
	Slug string
}

// UpsertProductOptions inserts a product or updates it by sku.
type UpsertProductOptions struct {
	Name          string
	Slug          string
	Description   string
	Price         float64
	DiscountPrice *float64
	Stock         int
	SKU           string
	Images        []string
	CategoryID    string
	IsActive      bool
}
