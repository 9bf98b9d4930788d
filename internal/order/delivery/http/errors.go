package http

import (
	"errors"
	"net/http"

	"chat-commerce/internal/model"
	"chat-commerce/internal/order"
	pkgErrors "chat-commerce/pkg/errors"
)

func (h *handler) mapError(err error) error {
	var (
		addrErr        *model.AddressFieldError
		stockErr       *order.InsufficientStockError
		unavailableErr *order.ProductUnavailableError
	)
	switch {
	case errors.As(err, &addrErr):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, addrErr.Error())
	case errors.As(err, &stockErr):
		return pkgErrors.NewHTTPError(http.StatusConflict, stockErr.Error())
	case errors.As(err, &unavailableErr):
		return pkgErrors.NewHTTPError(http.StatusNotFound, unavailableErr.Error())
	}

	switch err {
	case order.ErrCartEmpty, order.ErrInvalidID, order.ErrAddressRequired:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case order.ErrOrderNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case order.ErrUserRequired:
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
