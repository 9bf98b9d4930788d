package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-commerce/pkg/scope"
)

// ChatRateLimit limits chat messages per authenticated user (client IP when
// no user is attached). Must run after AgentAuth.
func (m Middleware) ChatRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if sc, ok := scope.GetScopeFromContext(c.Request.Context()); ok {
			key = sc.UserID
		}

		if err := m.chatLimiter.Allow(key); err != nil {
			m.l.Warnf(c.Request.Context(), "%s: %v", logPrefixRateLimit, err)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, agentError(agentMsgRateLimited))
			return
		}
		c.Next()
	}
}
