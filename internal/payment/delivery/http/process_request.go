package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "chat-commerce/pkg/errors"
	"chat-commerce/pkg/scope"
)

const headerSignature = "X-Razorpay-Signature"

// userID returns the authenticated caller set by the Auth middleware.
func (h *handler) userID(c *gin.Context) (string, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return "", pkgErrors.ErrUnauthorized
	}
	return sc.UserID, nil
}

func (h *handler) processCheckoutReq(c *gin.Context) (checkoutReq, error) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "orderId is required")
	}
	return req, nil
}

func (h *handler) processVerifyReq(c *gin.Context) (verifyReq, error) {
	var req verifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

// processWebhookReq returns the raw body and its signature header. The body
// must stay byte-exact for signature verification.
func (h *handler) processWebhookReq(c *gin.Context) ([]byte, string, error) {
	payload, err := c.GetRawData()
	if err != nil || len(payload) == 0 {
		return nil, "", pkgErrors.ErrBadRequest
	}
	return payload, c.GetHeader(headerSignature), nil
}
