package repository

// UpsertItemOptions sets a cart line, creating the user's cart when needed.
type UpsertItemOptions struct {
	UserID        string
	ProductID     string
	Quantity      int
	PriceSnapshot float64
}
