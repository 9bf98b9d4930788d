package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"chat-commerce/internal/model"
	"chat-commerce/pkg/response"
	"chat-commerce/pkg/scope"
)

// Auth requires a valid bearer access token and attaches the caller scope to
// the request context. Failures answer with the standard 401 envelope.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := m.authenticate(c)
		if !ok {
			response.Unauthorized(c)
			return
		}
		m.attach(c, sc)
		c.Next()
	}
}

// AgentAuth is Auth for the chat endpoint: failures answer 401 with the
// agent error shape so the chat client can render them.
func (m Middleware) AgentAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := m.authenticate(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, agentError(agentMsgUnauthorized))
			return
		}
		m.attach(c, sc)
		c.Next()
	}
}

func (m Middleware) authenticate(c *gin.Context) (model.Scope, bool) {
	header := c.GetHeader(headerAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return model.Scope{}, false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return model.Scope{}, false
	}

	sc, err := m.jwtManager.Verify(token)
	if err != nil {
		m.l.Debugf(c.Request.Context(), "%s: %v", logPrefixAuth, err)
		return model.Scope{}, false
	}
	return sc, true
}

func (m Middleware) attach(c *gin.Context, sc model.Scope) {
	c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), sc))
}

func agentError(message string) gin.H {
	return gin.H{"type": agentTypeError, "message": message, "data": nil}
}
