package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterCustomerInput) (*domain.Customer, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.LoginResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterCustomerInput) (*domain.Customer, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.Identity, error) {
	return nil, errors.New("not used")
}

func (s *stubAuthService) ResolveIdentity(context.Context, domain.TokenClaims) (*domain.Identity, error) {
	return nil, errors.New("not used")
}

const validRegistration = `{"nombre":"Ana Pérez","correo":"ana@tienda.com","contrasena":"secreta1","telefono":"5551234","direccion":"Calle 1 #2"}`

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterCustomerInput) (*domain.Customer, error) {
			if in.Email != "ana@tienda.com" || in.Password != "secreta1" || in.Phone != "5551234" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Customer{ID: 1, Name: in.Name, Email: in.Email, Phone: in.Phone, Address: in.Address, Active: true}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/auth/register", validRegistration)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	resp := decodeBody(t, rec)
	if resp["message"] != "Cliente registrado correctamente" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	cliente, ok := resp["cliente"].(map[string]any)
	if !ok {
		t.Fatalf("expected cliente in response")
	}
	if cliente["cli_correo"] != "ana@tienda.com" || cliente["cli_activo"] != true {
		t.Fatalf("unexpected cliente payload: %+v", cliente)
	}
	if strings.Contains(rec.Body.String(), "secreta1") || strings.Contains(rec.Body.String(), "contrasena") {
		t.Fatalf("password leaked: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_Rejections(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		contains string
	}{
		{"missing fields", `{"correo":"ana@tienda.com"}`, "nombre es obligatorio"},
		{"bad email", `{"nombre":"Ana","correo":"nope","contrasena":"secreta1","telefono":"5551234","direccion":"Calle 1"}`, "correo debe ser un correo válido"},
		{"short password", `{"nombre":"Ana","correo":"ana@tienda.com","contrasena":"123","telefono":"5551234","direccion":"Calle 1"}`, "contrasena debe tener al menos 6"},
		{"unknown property", `{"nombre":"Ana","correo":"ana@tienda.com","contrasena":"secreta1","telefono":"5551234","direccion":"Calle 1","rol":"admin"}`, "la propiedad rol no está permitida"},
		{"wrong type", `{"nombre":42}`, "nombre tiene un tipo inválido"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			stub := &stubAuthService{
				registerFn: func(context.Context, ports.RegisterCustomerInput) (*domain.Customer, error) {
					t.Fatalf("service must not be called")
					return nil, nil
				},
			}
			c, _ := newJSONContext(e, http.MethodPost, "/auth/register", tc.body)
			expectValidationError(t, NewAuthHandler(stub).Register(c), tc.contains)
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterCustomerInput) (*domain.Customer, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}

	c, _ := newJSONContext(e, http.MethodPost, "/auth/register", validRegistration)
	err := NewAuthHandler(stub).Register(c)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*ports.LoginResult, error) {
			if email != "eva@tienda.com" || password != "secreta1" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return &ports.LoginResult{Role: domain.RoleEmployee, Label: "Empleado", Token: "signed"}, nil
		},
	}

	c, rec := newJSONContext(e, http.MethodPost, "/auth/login", `{"correo":"eva@tienda.com","contrasena":"secreta1"}`)
	if err := NewAuthHandler(stub).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["message"] != "Inicio de sesión exitoso" || resp["tipo"] != "Empleado" || resp["token"] != "signed" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}

	c, rec := newJSONContext(e, http.MethodPost, "/auth/login", `{"correo":"eva@tienda.com","contrasena":"secreta1"}`)
	err := NewAuthHandler(stub).Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("handler must leave rendering to the error handler, wrote %q", rec.Body.String())
	}
}

func TestAuthHandler_Profile(t *testing.T) {
	e := newTestEcho()
	handler := NewAuthHandler(&stubAuthService{})

	t.Run("returns the attached identity", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/auth/perfil", "")
		asIdentity(c, domain.Identity{ID: 3, Email: "root@tienda.com", Role: domain.RoleAdmin})

		if err := handler.Profile(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		resp := decodeBody(t, rec)
		if resp["id"] != float64(3) || resp["correo"] != "root@tienda.com" || resp["rol"] != "admin" {
			t.Fatalf("unexpected payload: %+v", resp)
		}
	})

	t.Run("without identity", func(t *testing.T) {
		c, _ := newJSONContext(e, http.MethodGet, "/auth/perfil", "")
		expectHTTPStatus(t, handler.Profile(c), http.StatusUnauthorized)
	})
}
