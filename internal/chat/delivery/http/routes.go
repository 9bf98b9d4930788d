package http

import (
	"github.com/gin-gonic/gin"

	"chat-commerce/internal/middleware"
)

// RegisterRoutes maps the chat endpoint. Auth and rate limit failures answer
// in the chat envelope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("", mw.AgentAuth(), mw.ChatRateLimit(), h.Chat)
}
