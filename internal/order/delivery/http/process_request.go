package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-commerce/internal/order"
	pkgErrors "chat-commerce/pkg/errors"
	"chat-commerce/pkg/scope"
)

// userID returns the authenticated caller set by the Auth middleware.
func (h *handler) userID(c *gin.Context) (string, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return "", pkgErrors.ErrUnauthorized
	}
	return sc.UserID, nil
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	if req.ShippingAddress == nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, order.ErrAddressRequired.Error())
	}
	return req, nil
}
