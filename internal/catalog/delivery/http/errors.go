package http

import (
	"net/http"

	"chat-commerce/internal/catalog"
	pkgErrors "chat-commerce/pkg/errors"
)

// mapError translates catalog errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case catalog.ErrProductNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case catalog.ErrInvalidID, catalog.ErrInvalidPrice:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
