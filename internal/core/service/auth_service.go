package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
	"github.com/taller/store-api/internal/metrics"
)

// AuthService authenticates across every credential category. Providers are
// tried in slice order on login; the first category whose stored hash
// verifies wins.
type AuthService struct {
	providers []ports.CredentialProvider
	byRole    map[domain.Role]ports.CredentialProvider
	customers ports.CustomerRepository
	hasher    ports.PasswordHasher
	tokens    ports.TokenIssuer
	log       zerolog.Logger
}

func NewAuthService(
	providers []ports.CredentialProvider,
	customers ports.CustomerRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	log zerolog.Logger,
) *AuthService {
	byRole := make(map[domain.Role]ports.CredentialProvider, len(providers))
	for _, p := range providers {
		byRole[p.Role()] = p
	}
	return &AuthService{
		providers: providers,
		byRole:    byRole,
		customers: customers,
		hasher:    hasher,
		tokens:    tokens,
		log:       log,
	}
}

// Login returns a token for the first category that accepts the credentials.
// Every non-matching outcome yields exactly domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		metrics.AuthLoginsTotal.WithLabelValues("invalid_credentials", "none").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	for _, p := range s.providers {
		cred, err := p.FindCredentialByEmail(ctx, email)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			metrics.AuthLoginsTotal.WithLabelValues("error", "none").Inc()
			return nil, fmt.Errorf("login: lookup %s: %w", p.Role(), err)
		}
		if !cred.Active || cred.PasswordHash == "" {
			continue
		}

		ok, err := s.hasher.Verify(password, cred.PasswordHash)
		if err != nil {
			s.log.Warn().Err(err).Str("role", p.Role().String()).Int64("id", cred.ID).Msg("stored password hash unreadable")
			continue
		}
		if !ok {
			continue
		}

		token, err := s.tokens.Issue(cred.ID, p.Role())
		if err != nil {
			metrics.AuthLoginsTotal.WithLabelValues("error", p.Role().String()).Inc()
			return nil, fmt.Errorf("login: %w", err)
		}

		metrics.AuthLoginsTotal.WithLabelValues("success", p.Role().String()).Inc()
		s.log.Info().Str("role", p.Role().String()).Int64("id", cred.ID).Msg("login succeeded")
		return &ports.LoginResult{Role: p.Role(), Label: p.Role().Label(), Token: token}, nil
	}

	metrics.AuthLoginsTotal.WithLabelValues("invalid_credentials", "none").Inc()
	return nil, domain.ErrInvalidCredentials
}

// Register creates a customer account. The password is hashed here and
// nowhere else on this path.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterCustomerInput) (*domain.Customer, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		metrics.AuthRegistrationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	customer := &domain.Customer{
		Name:    in.Name,
		Email:   strings.TrimSpace(in.Email),
		Phone:   in.Phone,
		Address: in.Address,
		Active:  true,
	}
	if err := s.customers.Create(ctx, customer, hash); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			metrics.AuthRegistrationsTotal.WithLabelValues("duplicate").Inc()
			return nil, err
		}
		metrics.AuthRegistrationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("register: %w", err)
	}

	metrics.AuthRegistrationsTotal.WithLabelValues("success").Inc()
	s.log.Info().Int64("cli_id", customer.ID).Msg("customer registered")
	return customer, nil
}

// ResolveIdentity maps verified claims to the live account they name.
func (s *AuthService) ResolveIdentity(ctx context.Context, claims domain.TokenClaims) (*domain.Identity, error) {
	p, ok := s.byRole[claims.Role]
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cred, err := p.FindCredentialByID(ctx, claims.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	if !cred.Active {
		return nil, domain.ErrUnauthorized
	}

	return &domain.Identity{ID: cred.ID, Email: cred.Email, Role: p.Role()}, nil
}

// Authenticate verifies a raw bearer token and resolves its identity.
func (s *AuthService) Authenticate(ctx context.Context, rawToken string) (*domain.Identity, error) {
	claims, err := s.tokens.Verify(rawToken)
	if err != nil {
		metrics.AuthTokensRejectedTotal.WithLabelValues("invalid_token").Inc()
		return nil, err
	}

	identity, err := s.ResolveIdentity(ctx, *claims)
	if errors.Is(err, domain.ErrUnauthorized) {
		metrics.AuthTokensRejectedTotal.WithLabelValues("unknown_identity").Inc()
	}
	return identity, err
}
