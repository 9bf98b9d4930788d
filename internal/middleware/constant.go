package middleware

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"
	bearerPrefix        = "Bearer "

	agentTypeError       = "error"
	agentMsgUnauthorized = "Unauthorized. Please log in."
	agentMsgRateLimited  = "Too many messages. Please wait a moment and try again."

	logPrefixAuth      = "middleware.Auth"
	logPrefixRateLimit = "middleware.ChatRateLimit"
)

// Origins always allowed for local frontends.
var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://localhost:4173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:4173",
}
