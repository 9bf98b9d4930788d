package http

import (
	"github.com/gin-gonic/gin"

	"chat-commerce/internal/middleware"
)

// RegisterRoutes maps the cart endpoints. Every route requires a user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())

	rg.GET("", h.Get)
	rg.DELETE("", h.Clear)

	items := rg.Group("/items")
	{
		items.POST("", h.AddItem)
		items.PATCH("/:productId", h.UpdateItem)
		items.DELETE("/:productId", h.RemoveItem)
	}
}
