package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"chat-commerce/pkg/log"
)

// RequestID propagates X-Request-ID (generating one when absent) into the
// response header and the request context used by the logger.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(headerRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
