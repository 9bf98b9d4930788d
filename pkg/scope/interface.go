package scope

import (
	"context"
	"time"

	"chat-commerce/internal/model"
)

// Manager issues and verifies access and refresh tokens.
type Manager interface {
	CreateToken(sc model.Scope) (string, error)
	CreateRefreshToken(sc model.Scope) (string, error)
	Verify(token string) (model.Scope, error)
	VerifyRefresh(token string) (model.Scope, error)
}

// Config configures a Manager. An empty RefreshSecret reuses Secret.
type Config struct {
	Secret        string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type scopeCtxKey struct{}

// SetScopeToContext attaches the authenticated caller to ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the caller attached by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	return sc, ok && !sc.IsZero()
}
