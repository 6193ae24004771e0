package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
	"github.com/taller/store-api/internal/infrastructure/security"
)

type authFixture struct {
	svc       *AuthService
	admins    *stubCredentials
	customers *stubCustomerRepo
	employees *stubCredentials
	hasher    *fakeHasher
	tokens    *security.TokenIssuer
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	tokens, err := security.NewTokenIssuer(security.TokenConfig{Secret: "test-secret", TTL: time.Hour})
	require.NoError(t, err)

	f := &authFixture{
		admins:    &stubCredentials{role: domain.RoleAdmin},
		customers: newStubCustomerRepo(),
		employees: &stubCredentials{role: domain.RoleEmployee},
		hasher:    &fakeHasher{},
		tokens:    tokens,
	}
	providers := []ports.CredentialProvider{f.admins, f.customers, f.employees}
	f.svc = NewAuthService(providers, f.customers, f.hasher, tokens, zerolog.Nop())
	return f
}

func TestLogin_ReturnsRoleOfMatchingCategory(t *testing.T) {
	f := newAuthFixture(t)
	f.admins.add(1, "ana@tienda.com", "hash$Admin#123", true)
	f.customers.add(2, "carlos@correo.com", "hash$Cliente#123", true)
	f.employees.add(3, "eva@tienda.com", "hash$Empleado#123", true)

	tests := []struct {
		email, password string
		wantRole        domain.Role
		wantLabel       string
		wantID          int64
	}{
		{"ana@tienda.com", "Admin#123", domain.RoleAdmin, "Administrador", 1},
		{"carlos@correo.com", "Cliente#123", domain.RoleCustomer, "Cliente", 2},
		{"eva@tienda.com", "Empleado#123", domain.RoleEmployee, "Empleado", 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.wantRole), func(t *testing.T) {
			res, err := f.svc.Login(context.Background(), tt.email, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, res.Role)
			assert.Equal(t, tt.wantLabel, res.Label)

			claims, err := f.tokens.Verify(res.Token)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, claims.ID)
			assert.Equal(t, tt.wantRole, claims.Role)
		})
	}
}

func TestLogin_TieBreakFollowsCategoryOrder(t *testing.T) {
	f := newAuthFixture(t)
	f.customers.add(10, "mismo@correo.com", "hash$Clave#123", true)
	f.employees.add(20, "mismo@correo.com", "hash$Clave#123", true)

	res, err := f.svc.Login(context.Background(), "mismo@correo.com", "Clave#123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, res.Role)
}

func TestLogin_FallsThroughOnPasswordMismatch(t *testing.T) {
	f := newAuthFixture(t)
	f.admins.add(1, "mismo@correo.com", "hash$OtraClave#1", true)
	f.employees.add(20, "mismo@correo.com", "hash$Clave#123", true)

	res, err := f.svc.Login(context.Background(), "mismo@correo.com", "Clave#123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEmployee, res.Role)
}

func TestLogin_EveryFailureLooksTheSame(t *testing.T) {
	f := newAuthFixture(t)
	f.admins.add(1, "ana@tienda.com", "hash$Admin#123", true)
	f.customers.add(2, "inactivo@correo.com", "hash$Cliente#123", false)
	f.customers.add(3, "sinclave@correo.com", "", true)
	f.employees.add(4, "roto@tienda.com", "not-a-hash", true)

	tests := []struct {
		name, email, password string
	}{
		{"unknown email", "nadie@correo.com", "Admin#123"},
		{"wrong password", "ana@tienda.com", "Incorrecta#1"},
		{"inactive account", "inactivo@correo.com", "Cliente#123"},
		{"account without password", "sinclave@correo.com", "Cliente#123"},
		{"unreadable stored hash", "roto@tienda.com", "Empleado#123"},
		{"empty password", "ana@tienda.com", ""},
		{"blank email", "   ", "Admin#123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.svc.Login(context.Background(), tt.email, tt.password)
			assert.Nil(t, res)
			assert.Equal(t, domain.ErrInvalidCredentials, err)
		})
	}
}

func TestLogin_StoreFailureIsNotInvalidCredentials(t *testing.T) {
	f := newAuthFixture(t)
	f.admins.err = errors.New("connection refused")

	_, err := f.svc.Login(context.Background(), "ana@tienda.com", "Admin#123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.ErrorContains(t, err, "connection refused")
}

func TestAuthenticate_RoundTrip(t *testing.T) {
	f := newAuthFixture(t)
	f.employees.add(3, "eva@tienda.com", "hash$Empleado#123", true)

	res, err := f.svc.Login(context.Background(), "eva@tienda.com", "Empleado#123")
	require.NoError(t, err)

	identity, err := f.svc.Authenticate(context.Background(), res.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.Identity{ID: 3, Email: "eva@tienda.com", Role: domain.RoleEmployee}, *identity)
}

func TestAuthenticate_RejectsForeignToken(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Authenticate(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestResolveIdentity_IsStable(t *testing.T) {
	f := newAuthFixture(t)
	f.admins.add(1, "ana@tienda.com", "hash$Admin#123", true)
	claims := domain.TokenClaims{ID: 1, Role: domain.RoleAdmin}

	first, err := f.svc.ResolveIdentity(context.Background(), claims)
	require.NoError(t, err)
	second, err := f.svc.ResolveIdentity(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, *first, *second)
}

func TestResolveIdentity_Unauthorized(t *testing.T) {
	f := newAuthFixture(t)
	f.customers.add(2, "inactivo@correo.com", "hash$Cliente#123", false)

	tests := []struct {
		name   string
		claims domain.TokenClaims
	}{
		{"deleted account", domain.TokenClaims{ID: 99, Role: domain.RoleAdmin}},
		{"inactive account", domain.TokenClaims{ID: 2, Role: domain.RoleCustomer}},
		{"id belongs to another category", domain.TokenClaims{ID: 2, Role: domain.RoleEmployee}},
		{"unknown role", domain.TokenClaims{ID: 2, Role: domain.Role("proveedor")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := f.svc.ResolveIdentity(context.Background(), tt.claims)
			assert.Nil(t, identity)
			assert.Equal(t, domain.ErrUnauthorized, err)
		})
	}
}

func TestRegister_CreatesActiveCustomer(t *testing.T) {
	f := newAuthFixture(t)

	customer, err := f.svc.Register(context.Background(), ports.RegisterCustomerInput{
		Name:     "Carlos",
		Email:    "carlos@correo.com",
		Password: "Cliente#123",
	})
	require.NoError(t, err)
	assert.True(t, customer.Active)
	assert.Equal(t, 1, f.hasher.calls)
	assert.Equal(t, "hash$Cliente#123", f.customers.hashes[customer.ID])

	res, err := f.svc.Login(context.Background(), "carlos@correo.com", "Cliente#123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, res.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	in := ports.RegisterCustomerInput{Name: "Carlos", Email: "carlos@correo.com", Password: "Cliente#123"}

	_, err := f.svc.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = f.svc.Register(context.Background(), in)
	assert.Equal(t, domain.ErrDuplicateEmail, err)
	assert.Len(t, f.customers.customers, 1)
}

func TestRegister_SameEmailInAnotherCategoryIsAllowed(t *testing.T) {
	f := newAuthFixture(t)
	f.admins.add(1, "ana@tienda.com", "hash$Admin#123", true)

	_, err := f.svc.Register(context.Background(), ports.RegisterCustomerInput{
		Name: "Ana", Email: "ana@tienda.com", Password: "Cliente#123",
	})
	require.NoError(t, err)
}
