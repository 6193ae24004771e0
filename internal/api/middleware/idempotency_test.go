package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]ports.CachedResponse
	getErr  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[string]ports.CachedResponse)}
}

func (s *memoryStore) Get(_ context.Context, scope string) (*ports.CachedResponse, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if resp, ok := s.entries[scope]; ok {
		return &resp, nil
	}
	return nil, nil
}

func (s *memoryStore) Save(_ context.Context, scope string, resp ports.CachedResponse, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[scope]; !ok {
		s.entries[scope] = resp
	}
	return nil
}

func newIdempotentServer(store ports.IdempotencyStore, status int) (*echo.Echo, *int) {
	e := echo.New()
	calls := 0
	e.POST("/venta", func(c echo.Context) error {
		calls++
		return c.JSON(status, map[string]int{"venta_id": calls})
	}, Idempotency(store, time.Minute, zerolog.Nop()))
	return e, &calls
}

func post(e *echo.Echo, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/venta", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if key != "" {
		req.Header.Set(HeaderIdempotencyKey, key)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	e, calls := newIdempotentServer(newMemoryStore(), http.StatusCreated)

	first := post(e, "k-1")
	second := post(e, "k-1")

	if *calls != 1 {
		t.Fatalf("expected handler to run once, ran %d times", *calls)
	}
	if second.Code != http.StatusCreated {
		t.Fatalf("expected replayed 201, got %d", second.Code)
	}
	if second.Body.String() != first.Body.String() {
		t.Fatalf("expected identical body, got %q vs %q", second.Body.String(), first.Body.String())
	}
	if second.Header().Get(HeaderReplayed) != "true" {
		t.Fatalf("expected replay header")
	}
	if first.Header().Get(HeaderReplayed) != "" {
		t.Fatalf("first response must not be marked as replayed")
	}
	if !strings.HasPrefix(second.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		t.Fatalf("expected JSON content type, got %q", second.Header().Get(echo.HeaderContentType))
	}
}

func TestIdempotency_DifferentKeysRunTwice(t *testing.T) {
	e, calls := newIdempotentServer(newMemoryStore(), http.StatusCreated)

	post(e, "k-1")
	post(e, "k-2")

	if *calls != 2 {
		t.Fatalf("expected 2 calls, got %d", *calls)
	}
}

func TestIdempotency_WithoutKeyIsPassThrough(t *testing.T) {
	e, calls := newIdempotentServer(newMemoryStore(), http.StatusCreated)

	post(e, "")
	post(e, "")

	if *calls != 2 {
		t.Fatalf("expected 2 calls, got %d", *calls)
	}
}

func TestIdempotency_DoesNotCacheFailures(t *testing.T) {
	store := newMemoryStore()
	e, calls := newIdempotentServer(store, http.StatusBadRequest)

	post(e, "k-1")
	post(e, "k-1")

	if *calls != 2 {
		t.Fatalf("expected non-2xx responses to be retried, got %d calls", *calls)
	}
	if len(store.entries) != 0 {
		t.Fatalf("expected nothing cached")
	}
}

func TestIdempotency_StoreFailureFailsOpen(t *testing.T) {
	store := newMemoryStore()
	store.getErr = errors.New("redis down")
	e, calls := newIdempotentServer(store, http.StatusCreated)

	rec := post(e, "k-1")

	if rec.Code != http.StatusCreated || *calls != 1 {
		t.Fatalf("expected request to proceed, got %d with %d calls", rec.Code, *calls)
	}
}

func TestIdempotency_ScopesKeyPerCaller(t *testing.T) {
	e := echo.New()
	calls := 0
	asCaller := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, _ := strconv.ParseInt(c.Request().Header.Get("X-Caller"), 10, 64)
			c.Set(IdentityKey, &domain.Identity{ID: id, Role: domain.RoleEmployee})
			return next(c)
		}
	}
	e.POST("/venta", func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusCreated, map[string]int{"venta_id": calls})
	}, asCaller, Idempotency(newMemoryStore(), time.Minute, zerolog.Nop()))

	send := func(caller string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/venta", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(HeaderIdempotencyKey, "retry-1")
		req.Header.Set("X-Caller", caller)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	first := send("1")
	second := send("2")
	again := send("1")

	if calls != 2 {
		t.Fatalf("expected one call per caller, got %d", calls)
	}
	if second.Header().Get(HeaderReplayed) != "" {
		t.Fatalf("second caller must not receive the first caller's response")
	}
	if second.Body.String() == first.Body.String() {
		t.Fatalf("expected distinct bodies, both were %q", first.Body.String())
	}
	if again.Header().Get(HeaderReplayed) != "true" || again.Body.String() != first.Body.String() {
		t.Fatalf("expected first caller's retry to replay, got %q", again.Body.String())
	}
}
