package order

import (
	"errors"
	"fmt"
)

var (
	ErrCartEmpty       = errors.New("Cart is empty")
	ErrOrderNotFound   = errors.New("Order not found")
	ErrInvalidID       = errors.New("Invalid order id")
	ErrUserRequired    = errors.New("User is required")
	ErrAddressRequired = errors.New("Shipping address is required")
)

// InsufficientStockError reports a line that no longer fits the stock.
type InsufficientStockError struct {
	Name      string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s. Available: %d", e.Name, e.Available)
}

// ProductUnavailableError reports a cart line whose product was removed or deactivated.
type ProductUnavailableError struct {
	ProductID string
}

func (e *ProductUnavailableError) Error() string {
	return fmt.Sprintf("Product not found: %s", e.ProductID)
}
