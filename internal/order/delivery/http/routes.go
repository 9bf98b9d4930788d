package http

import (
	"github.com/gin-gonic/gin"

	"chat-commerce/internal/middleware"
)

// RegisterRoutes maps the order endpoints. Every route requires a user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())

	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Detail)
}
