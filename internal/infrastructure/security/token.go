package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taller/store-api/internal/core/domain"
)

// TokenConfig is everything the issuer needs. Secret and TTL are mandatory.
type TokenConfig struct {
	Secret string
	TTL    time.Duration
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// TokenIssuer signs and verifies HS256 bearer tokens carrying {id, rol}.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type tokenClaims struct {
	UserID int64  `json:"id"`
	Rol    string `json:"rol"`
	jwt.RegisteredClaims
}

func NewTokenIssuer(cfg TokenConfig) (*TokenIssuer, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token issuer: secret is required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("token issuer: ttl must be positive, got %s", cfg.TTL)
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &TokenIssuer{secret: []byte(cfg.Secret), ttl: cfg.TTL, now: now}, nil
}

func (t *TokenIssuer) Issue(id int64, role domain.Role) (string, error) {
	now := t.now()
	claims := tokenClaims{
		UserID: id,
		Rol:    role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry. A token is valid while the
// clock is strictly before its exp claim.
func (t *TokenIssuer) Verify(raw string) (*domain.TokenClaims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}

	role := domain.Role(claims.Rol)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidToken, claims.Rol)
	}
	if claims.UserID <= 0 {
		return nil, fmt.Errorf("%w: missing id", domain.ErrInvalidToken)
	}

	out := &domain.TokenClaims{ID: claims.UserID, Role: role}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
