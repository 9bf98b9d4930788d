package http

import (
	"github.com/gin-gonic/gin"

	"chat-commerce/internal/middleware"
)

// RegisterRoutes maps the payment endpoints. The webhook is authenticated by
// its signature instead of a user token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/webhook", h.Webhook)

	authed := rg.Group("", mw.Auth())
	{
		authed.POST("/checkout", h.Checkout)
		authed.POST("/verify", h.Verify)
	}
}
