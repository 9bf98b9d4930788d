package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the local frontends plus the configured origins, with credentials.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	origins := append([]string{}, defaultAllowedOrigins...)
	seen := make(map[string]bool, len(origins))
	for _, o := range origins {
		seen[o] = true
	}
	for _, o := range allowedOrigins {
		if o != "" && !seen[o] {
			origins = append(origins, o)
			seen[o] = true
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{headerRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
