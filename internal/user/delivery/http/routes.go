package http

import (
	"github.com/gin-gonic/gin"

	"chat-commerce/internal/middleware"
)

// RegisterRoutes maps the auth endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/signup", h.Signup)
	rg.POST("/login", h.Login)
	rg.POST("/refresh", h.Refresh)
	rg.GET("/me", mw.Auth(), h.Me)

	profile := rg.Group("/profile", mw.Auth())
	{
		profile.GET("", h.Me)
		profile.PATCH("", h.UpdateProfile)
	}
}
