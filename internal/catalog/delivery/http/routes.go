package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the public catalog endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.List)
	rg.GET("/search", h.Search)
	rg.GET("/:id", h.Detail)
}
