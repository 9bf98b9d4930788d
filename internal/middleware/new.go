package middleware

import (
	"chat-commerce/pkg/log"
	"chat-commerce/pkg/ratelimit"
	"chat-commerce/pkg/scope"
)

type Middleware struct {
	l           log.Logger
	jwtManager  scope.Manager
	chatLimiter *ratelimit.Limiter
}

func New(l log.Logger, jwtManager scope.Manager, chatRateLimitPerMin int) Middleware {
	return Middleware{
		l:           l,
		jwtManager:  jwtManager,
		chatLimiter: ratelimit.New(chatRateLimitPerMin),
	}
}
