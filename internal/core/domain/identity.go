package domain

import (
	"context"
	"time"
)

// Credential is the password-bearing view of an account in any category.
// It never leaves the core; handlers only ever see the entity types.
type Credential struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	Active       bool
}

// TokenClaims is the verified content of a bearer token.
type TokenClaims struct {
	ID        int64
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Identity is the authenticated principal attached to a request.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"correo"`
	Role  Role   `json:"rol"`
}

// HasRole reports whether the identity belongs to any of roles.
func (i Identity) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity stored by WithIdentity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
