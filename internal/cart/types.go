package cart

import "math"

// Item is one cart line with the product summary the UI needs.
type Item struct {
	ProductID     string
	Name          string
	Slug          string
	Image         string
	Price         float64
	DiscountPrice *float64
	Stock         int
	IsActive      bool
	Quantity      int
	PriceSnapshot float64
}

// Subtotal is the line total at the snapshot price.
func (i Item) Subtotal() float64 {
	return i.PriceSnapshot * float64(i.Quantity)
}

// Cart is a user's cart. A user without a cart has an empty one.
type Cart struct {
	UserID     string
	Items      []Item
	TotalPrice float64
}

// Find returns the line for productID.
func (c Cart) Find(productID string) (Item, bool) {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it, true
		}
	}
	return Item{}, false
}

// NewCart builds a cart and computes its total rounded to paise.
func NewCart(userID string, items []Item) Cart {
	if items == nil {
		items = []Item{}
	}
	var total float64
	for _, it := range items {
		total += it.Subtotal()
	}
	return Cart{UserID: userID, Items: items, TotalPrice: math.Round(total*100) / 100}
}

// --- UseCase Inputs ---

type AddItemInput struct {
	UserID    string
	ProductID string
	Quantity  int
}

type UpdateItemInput struct {
	UserID    string
	ProductID string
	Quantity  int
}
