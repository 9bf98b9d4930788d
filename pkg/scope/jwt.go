package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"chat-commerce/internal/model"
)

const (
	defaultAccessTTL  = 20 * time.Hour
	defaultRefreshTTL = 7 * 24 * time.Hour
	tokenTypeAccess   = "access"
	tokenTypeRefresh  = "refresh"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrSecretMissing = errors.New("jwt secret is required")
)

// Payload is the JWT claim set.
type Payload struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Role   string `json:"role"`
	Type   string `json:"typ,omitempty"`
}

type implManager struct {
	secret        []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// New creates an HS256 token manager.
func New(cfg Config) (Manager, error) {
	if cfg.Secret == "" {
		return nil, ErrSecretMissing
	}
	m := &implManager{
		secret:        []byte(cfg.Secret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           time.Now,
	}
	if len(m.refreshSecret) == 0 {
		m.refreshSecret = m.secret
	}
	if m.accessTTL <= 0 {
		m.accessTTL = defaultAccessTTL
	}
	if m.refreshTTL <= 0 {
		m.refreshTTL = defaultRefreshTTL
	}
	return m, nil
}

func (m *implManager) CreateToken(sc model.Scope) (string, error) {
	return m.sign(sc, tokenTypeAccess, m.accessTTL, m.secret)
}

func (m *implManager) CreateRefreshToken(sc model.Scope) (string, error) {
	return m.sign(sc, tokenTypeRefresh, m.refreshTTL, m.refreshSecret)
}

func (m *implManager) Verify(token string) (model.Scope, error) {
	return m.parse(token, tokenTypeAccess, m.secret)
}

func (m *implManager) VerifyRefresh(token string) (model.Scope, error) {
	return m.parse(token, tokenTypeRefresh, m.refreshSecret)
}

func (m *implManager) sign(sc model.Scope, typ string, ttl time.Duration, secret []byte) (string, error) {
	if sc.IsZero() {
		return "", fmt.Errorf("%w: user id is required", ErrInvalidToken)
	}
	now := m.now()
	claims := Payload{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sc.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: sc.UserID,
		Role:   sc.Role,
		Type:   typ,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (m *implManager) parse(token, typ string, secret []byte) (model.Scope, error) {
	var claims Payload
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return model.Scope{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.UserID == "" || claims.Type != typ {
		return model.Scope{}, ErrInvalidToken
	}
	return model.Scope{UserID: claims.UserID, Role: claims.Role}, nil
}
