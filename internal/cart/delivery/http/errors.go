package http

import (
	"errors"
	"net/http"

	"chat-commerce/internal/cart"
	"chat-commerce/internal/catalog"
	pkgErrors "chat-commerce/pkg/errors"
)

// mapError translates cart errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var stockErr *cart.StockError
	if errors.As(err, &stockErr) {
		return pkgErrors.NewHTTPError(http.StatusConflict, stockErr.Error())
	}

	switch err {
	case cart.ErrInvalidQuantity, catalog.ErrInvalidID:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case cart.ErrNotInCart, catalog.ErrProductNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case cart.ErrUserRequired:
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
