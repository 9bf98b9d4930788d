package http

import (
	"github.com/gin-gonic/gin"

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

// processAddItemReq binds the add item body.
func (h *handler) processAddItemReq(c *gin.Context) (addItemReq, error) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "productId is required")
	}
	return req, nil
}

// processUpdateItemReq binds the update body + URI param.
func (h *handler) processUpdateItemReq(c *gin.Context) (updateItemReq, error) {
	var req updateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "quantity is required")
	}
	req.ProductID = c.Param("productId")
	return req, nil
}
