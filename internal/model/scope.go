package model

// Role values carried in access tokens.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Scope identifies the authenticated caller of a request.
type Scope struct {
	UserID string
	Role   string
}

// IsZero reports whether no user is attached.
func (s Scope) IsZero() bool {
	return s.UserID == ""
}
