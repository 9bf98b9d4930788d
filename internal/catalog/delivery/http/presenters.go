package http

import (
	"chat-commerce/internal/catalog"
)

// --- Request DTOs ---

type searchReq struct {
	Query    string   `form:"q"`
	Name     string   `form:"name"`
	Category string   `form:"category"`
	MinPrice *float64 `form:"minPrice"`
	MaxPrice *float64 `form:"maxPrice"`
}

func (r searchReq) toFilters() catalog.Filters {
	q := r.Query
	if q == "" {
		q = r.Name
	}
	return catalog.Filters{
		Query:    q,
		Category: r.Category,
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
	}
}

// --- Response DTOs ---

type categoryResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type productResp struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Slug           string       `json:"slug"`
	Description    string       `json:"description"`
	Price          float64      `json:"price"`
	DiscountPrice  *float64     `json:"discountPrice"`
	Stock          int          `json:"stock"`
	OutOfStock     bool         `json:"outOfStock"`
	SKU            string       `json:"sku"`
	Images         []string     `json:"images"`
	Category       categoryResp `json:"category"`
	RatingsAverage float64      `json:"ratingsAverage"`
	RatingsCount   int          `json:"ratingsCount"`
}

func newProductResp(p catalog.Product) productResp {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return productResp{
		ID:             p.ID,
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		Price:          p.Price,
		DiscountPrice:  p.DiscountPrice,
		Stock:          p.Stock,
		OutOfStock:     p.OutOfStock(),
		SKU:            p.SKU,
		Images:         images,
		Category:       categoryResp{ID: p.Category.ID, Name: p.Category.Name, Slug: p.Category.Slug},
		RatingsAverage: p.RatingsAverage,
		RatingsCount:   p.RatingsCount,
	}
}

type listResp struct {
	Products []productResp `json:"products"`
}

func (h *handler) newListResp(products []catalog.Product) listResp {
	out := make([]productResp, len(products))
	for i, p := range products {
		out[i] = newProductResp(p)
	}
	return listResp{Products: out}
}

type detailResp struct {
	Product productResp `json:"product"`
}

func (h *handler) newDetailResp(p catalog.Product) detailResp {
	return detailResp{Product: newProductResp(p)}
}
