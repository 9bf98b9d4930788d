package catalog

import "errors"

var (
	ErrProductNotFound = errors.New("Product not found")
	ErrInvalidID       = errors.New("Invalid product id")
	ErrInvalidPrice    = errors.New("minPrice cannot be greater than maxPrice")
)
