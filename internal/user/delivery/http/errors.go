package http

import (
	"errors"
	"net/http"

	"chat-commerce/internal/model"
	"chat-commerce/internal/user"
	pkgErrors "chat-commerce/pkg/errors"
)

func (h *handler) mapError(err error) error {
	var fieldErr *model.AddressFieldError
	if errors.As(err, &fieldErr) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, fieldErr.Error())
	}

	switch err {
	case user.ErrFieldsRequired, user.ErrPasswordTooShort, user.ErrNameRequired:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case user.ErrEmailTaken:
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case user.ErrInvalidCredentials, user.ErrInvalidRefreshToken:
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case user.ErrUserNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
