package ports

import "github.com/taller/store-api/internal/core/domain"

// PasswordHasher is a one-way hash + verify primitive.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Verify reports whether plain matches encoded. A malformed encoded
	// value is an error; a plain mismatch is (false, nil).
	Verify(plain, encoded string) (bool, error)
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	Issue(id int64, role domain.Role) (string, error)
	Verify(raw string) (*domain.TokenClaims, error)
}
