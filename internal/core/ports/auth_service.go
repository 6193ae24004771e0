package ports

import (
	"context"

	"github.com/taller/store-api/internal/core/domain"
)

// RegisterCustomerInput carries self-registration data.
type RegisterCustomerInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Role  domain.Role
	Label string
	Token string
}

// Authenticator turns a raw bearer token into a resolved identity.
type Authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (*domain.Identity, error)
}

type AuthService interface {
	Authenticator
	Register(ctx context.Context, in RegisterCustomerInput) (*domain.Customer, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ResolveIdentity(ctx context.Context, claims domain.TokenClaims) (*domain.Identity, error)
}
