package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "chat-commerce/pkg/errors"
	"chat-commerce/pkg/scope"
)

func (h *handler) processSignupReq(c *gin.Context) (signupReq, error) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

func (h *handler) processRefreshReq(c *gin.Context) (refreshReq, error) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "refreshToken is required")
	}
	return req, nil
}

func (h *handler) processUpdateProfileReq(c *gin.Context) (updateProfileReq, error) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

func (h *handler) userID(c *gin.Context) (string, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return "", pkgErrors.ErrUnauthorized
	}
	return sc.UserID, nil
}
