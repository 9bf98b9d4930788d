package cart

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuantity = errors.New("Quantity must be at least 1")
	ErrNotInCart       = errors.New("Product not in cart")
	ErrUserRequired    = errors.New("User is required")
)

// StockError reports a request above the available stock.
type StockError struct {
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("Only %d items in stock", e.Available)
}
