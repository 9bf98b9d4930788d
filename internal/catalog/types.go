package catalog

import "time"

// Category groups products.
type Category struct {
	ID   string
	Name string
	Slug string
}

// Product is a sellable catalog entry.
type Product struct {
	ID             string
	Name           string
	Slug           string
	Description    string
	Price          float64
	DiscountPrice  *float64
	Stock          int
	SKU            string
	Images         []string
	Category       Category
	RatingsAverage float64
	RatingsCount   int
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UnitPrice is the price a buyer pays now: the discount price when set.
func (p Product) UnitPrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

func (p Product) OutOfStock() bool {
	return p.Stock <= 0
}

// Filters narrows a product search. Zero values are not applied.
type Filters struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// HasAny reports whether at least one filter is set.
func (f Filters) HasAny() bool {
	return f.Query != "" || f.Category != "" || f.MinPrice != nil || f.MaxPrice != nil
}
