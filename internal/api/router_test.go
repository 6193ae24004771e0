package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/taller/store-api/internal/api/handler"
	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

// fakeAuth issues "tok:<email>" and resolves it against a fixed account table.
type fakeAuth struct {
	accounts map[string]domain.Identity
	register func(in ports.RegisterCustomerInput) (*domain.Customer, error)
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*ports.LoginResult, error) {
	id, ok := f.accounts[email]
	if !ok || password != "secreta1" {
		return nil, domain.ErrInvalidCredentials
	}
	return &ports.LoginResult{Role: id.Role, Label: id.Role.Label(), Token: "tok:" + email}, nil
}

func (f *fakeAuth) Authenticate(_ context.Context, raw string) (*domain.Identity, error) {
	email, ok := strings.CutPrefix(raw, "tok:")
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	id, ok := f.accounts[email]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return &id, nil
}

func (f *fakeAuth) Register(_ context.Context, in ports.RegisterCustomerInput) (*domain.Customer, error) {
	return f.register(in)
}

func (f *fakeAuth) ResolveIdentity(context.Context, domain.TokenClaims) (*domain.Identity, error) {
	return nil, errors.New("not used")
}

type countingSales struct {
	ports.SaleService
	mu    sync.Mutex
	calls int
}

func (s *countingSales) Create(_ context.Context, in ports.CreateSaleInput) (*domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return &domain.Sale{ID: int64(s.calls), CustomerID: in.CustomerID, EmployeeID: in.EmployeeID, StoreID: in.StoreID, Active: true, Details: []domain.SaleDetail{}}, nil
}

type listAdmins struct{ ports.AdminService }

func (listAdmins) List(context.Context) ([]domain.Admin, error) {
	return []domain.Admin{{ID: 1, Username: "root"}}, nil
}

type memoryIdempotency struct {
	mu      sync.Mutex
	entries map[string]ports.CachedResponse
}

func (m *memoryIdempotency) Get(_ context.Context, scope string) (*ports.CachedResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if resp, ok := m.entries[scope]; ok {
		return &resp, nil
	}
	return nil, nil
}

func (m *memoryIdempotency) Save(_ context.Context, scope string, resp ports.CachedResponse, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[scope] = resp
	return nil
}

type routerFixture struct {
	srv   http.Handler
	sales *countingSales
}

func newRouterFixture() *routerFixture {
	sales := &countingSales{}
	auth := &fakeAuth{
		accounts: map[string]domain.Identity{
			"root@tienda.com": {ID: 1, Email: "root@tienda.com", Role: domain.RoleAdmin},
			"ana@tienda.com":  {ID: 2, Email: "ana@tienda.com", Role: domain.RoleCustomer},
			"eva@tienda.com":  {ID: 3, Email: "eva@tienda.com", Role: domain.RoleEmployee},
		},
		register: func(ports.RegisterCustomerInput) (*domain.Customer, error) {
			return nil, domain.ErrDuplicateEmail
		},
	}
	e := NewRouter(Dependencies{
		Auth:           auth,
		Admins:         listAdmins{},
		Sales:          sales,
		Idempotency:    &memoryIdempotency{entries: make(map[string]ports.CachedResponse)},
		IdempotencyTTL: time.Hour,
		HealthChecks:   map[string]handler.HealthCheck{},
		Log:            zerolog.Nop(),
	})
	return &routerFixture{srv: e, sales: sales}
}

func (f *routerFixture) do(t *testing.T, method, target, token, body string, headers ...string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	f.srv.ServeHTTP(rec, req)

	var out map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec, out
}

func (f *routerFixture) login(t *testing.T, email string) string {
	t.Helper()
	rec, body := f.do(t, http.MethodPost, "/auth/login", "", `{"correo":"`+email+`","contrasena":"secreta1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("login %s: expected 201, got %d: %s", email, rec.Code, rec.Body.String())
	}
	return body["token"].(string)
}

func TestRouter_LoginThenProfile(t *testing.T) {
	f := newRouterFixture()
	token := f.login(t, "eva@tienda.com")

	rec, body := f.do(t, http.MethodGet, "/auth/perfil", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body["id"] != float64(3) || body["rol"] != "empleado" || body["correo"] != "eva@tienda.com" {
		t.Fatalf("unexpected profile: %+v", body)
	}
}

func TestRouter_LoginInvalidCredentials(t *testing.T) {
	f := newRouterFixture()
	rec, body := f.do(t, http.MethodPost, "/auth/login", "", `{"correo":"eva@tienda.com","contrasena":"otra-cosa"}`)
	if rec.Code != http.StatusUnauthorized || body["error"] != "Credenciales inválidas" {
		t.Fatalf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_AdminOnlyRouteDeniesEmployee(t *testing.T) {
	f := newRouterFixture()
	token := f.login(t, "eva@tienda.com")

	rec, body := f.do(t, http.MethodGet, "/administrador", token, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if msg, _ := body["error"].(string); !strings.Contains(msg, "admin") {
		t.Fatalf("expected the message to name admin, got %q", msg)
	}

	rec, _ = f.do(t, http.MethodGet, "/administrador", f.login(t, "root@tienda.com"), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", rec.Code)
	}
}

func TestRouter_GuardRejections(t *testing.T) {
	f := newRouterFixture()

	rec, body := f.do(t, http.MethodGet, "/auth/perfil", "", "")
	if rec.Code != http.StatusUnauthorized || body["error"] != "falta el encabezado de autorización" {
		t.Fatalf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}

	rec, body = f.do(t, http.MethodGet, "/auth/perfil", "garbage", "")
	if rec.Code != http.StatusUnauthorized || body["error"] != "token inválido o expirado" {
		t.Fatalf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}

	rec, body = f.do(t, http.MethodGet, "/auth/perfil", "tok:gone@tienda.com", "")
	if rec.Code != http.StatusUnauthorized || body["error"] != "Token inválido o usuario no encontrado" {
		t.Fatalf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_RegisterDuplicate(t *testing.T) {
	f := newRouterFixture()
	rec, body := f.do(t, http.MethodPost, "/auth/register", "",
		`{"nombre":"Ana Pérez","correo":"ana@tienda.com","contrasena":"secreta1","telefono":"5551234","direccion":"Calle 1 #2"}`)
	if rec.Code != http.StatusBadRequest || body["error"] != "El correo ya está registrado" {
		t.Fatalf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_RegisterUnknownProperty(t *testing.T) {
	f := newRouterFixture()
	rec, body := f.do(t, http.MethodPost, "/auth/register", "",
		`{"nombre":"Ana Pérez","correo":"ana@tienda.com","contrasena":"secreta1","telefono":"5551234","direccion":"Calle 1 #2","rol":"admin"}`)
	if rec.Code != http.StatusBadRequest || body["error"] != "datos inválidos" {
		t.Fatalf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}
	details, _ := body["details"].([]any)
	if len(details) != 1 || details[0] != "la propiedad rol no está permitida" {
		t.Fatalf("unexpected details: %v", body["details"])
	}
}

func TestRouter_SaleCreateIsIdempotent(t *testing.T) {
	f := newRouterFixture()
	token := f.login(t, "eva@tienda.com")
	payload := `{"cli_id":2,"emp_id":3,"tienda_id":1}`

	first, firstBody := f.do(t, http.MethodPost, "/venta", token, payload, "Idempotency-Key", "sale-1")
	if first.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", first.Code, first.Body.String())
	}
	second, secondBody := f.do(t, http.MethodPost, "/venta", token, payload, "Idempotency-Key", "sale-1")
	if second.Code != http.StatusCreated || second.Header().Get("Idempotent-Replayed") != "true" {
		t.Fatalf("expected replayed 201, got %d headers=%v", second.Code, second.Header())
	}
	if firstBody["venta_id"] != secondBody["venta_id"] {
		t.Fatalf("replay returned a different sale: %v vs %v", firstBody, secondBody)
	}
	if f.sales.calls != 1 {
		t.Fatalf("expected one service call, got %d", f.sales.calls)
	}

	f.do(t, http.MethodPost, "/venta", token, payload, "Idempotency-Key", "sale-2")
	if f.sales.calls != 2 {
		t.Fatalf("a new key must reach the service, calls=%d", f.sales.calls)
	}
}

func TestRouter_SaleIdempotencyKeyIsPerCaller(t *testing.T) {
	f := newRouterFixture()
	payload := `{"cli_id":2,"emp_id":3,"tienda_id":1}`

	first, firstBody := f.do(t, http.MethodPost, "/venta", f.login(t, "eva@tienda.com"), payload, "Idempotency-Key", "retry-1")
	second, secondBody := f.do(t, http.MethodPost, "/venta", f.login(t, "root@tienda.com"), payload, "Idempotency-Key", "retry-1")

	if first.Code != http.StatusCreated || second.Code != http.StatusCreated {
		t.Fatalf("expected 201 twice, got %d and %d", first.Code, second.Code)
	}
	if second.Header().Get("Idempotent-Replayed") != "" {
		t.Fatalf("another caller's response was replayed")
	}
	if f.sales.calls != 2 || firstBody["venta_id"] == secondBody["venta_id"] {
		t.Fatalf("expected two distinct sales, calls=%d bodies=%v %v", f.sales.calls, firstBody, secondBody)
	}
}

func TestRouter_CatalogWritesRequireToken(t *testing.T) {
	f := newRouterFixture()

	for _, target := range []string{"/proveedor", "/inventario", "/producto"} {
		rec, body := f.do(t, http.MethodPost, target, "", `{}`)
		if rec.Code != http.StatusUnauthorized || body["error"] != "falta el encabezado de autorización" {
			t.Fatalf("POST %s: unexpected response %d: %s", target, rec.Code, rec.Body.String())
		}
	}
}

func TestRouter_HealthAndUnknownRoute(t *testing.T) {
	f := newRouterFixture()

	rec, body := f.do(t, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("unexpected health response %d: %s", rec.Code, rec.Body.String())
	}

	rec, _ = f.do(t, http.MethodGet, "/no-existe", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
