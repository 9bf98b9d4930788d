package repository

type UpsertPaymentOptions struct {
	ID        string
	OrderID   string
	UserID    string
	Provider  string
	PaymentID string
	Status    string
	Amount    float64
	Currency  string
}
