package http

import (
	"net/http"

	"chat-commerce/internal/order"
	"chat-commerce/internal/payment"
	pkgErrors "chat-commerce/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch err {
	case payment.ErrMissingFields, payment.ErrAmountTooSmall, payment.ErrOrderMismatch,
		payment.ErrInvalidSignature, payment.ErrInvalidWebhook, payment.ErrGatewayNotConfigured,
		order.ErrInvalidID:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case payment.ErrAlreadyPaid:
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case order.ErrOrderNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case order.ErrUserRequired:
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
