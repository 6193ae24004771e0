package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taller/store-api/internal/api/handler"
	"github.com/taller/store-api/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"validation", &handler.ValidationError{Messages: []string{"correo es obligatorio"}}, http.StatusBadRequest, "datos inválidos"},
		{"wrapped validation", echo.NewHTTPError(http.StatusBadRequest, "x").SetInternal(&handler.ValidationError{Messages: []string{"a"}}), http.StatusBadRequest, "datos inválidos"},
		{"echo error", echo.NewHTTPError(http.StatusForbidden, "Acceso denegado: requiere rol admin"), http.StatusForbidden, "Acceso denegado: requiere rol admin"},
		{"duplicate email", fmt.Errorf("register: %w", domain.ErrDuplicateEmail), http.StatusBadRequest, "El correo ya está registrado"},
		{"duplicate username", domain.ErrDuplicateUsername, http.StatusBadRequest, "El usuario ya está registrado"},
		{"duplicate tax id", fmt.Errorf("create supplier: %w", domain.ErrDuplicateTaxID), http.StatusBadRequest, "El RUC ya está registrado"},
		{"not found with message", fmt.Errorf("get: %w", domain.NewNotFound("Tienda con ID 4 no encontrada")), http.StatusNotFound, "Tienda con ID 4 no encontrada"},
		{"bare not found", domain.ErrNotFound, http.StatusNotFound, "recurso no encontrado"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Credenciales inválidas"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "token inválido o expirado"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "Token inválido o usuario no encontrado"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "acceso denegado"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "error interno del servidor"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var body handler.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, body.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_ValidationDetails(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	NewHTTPErrorHandler(zerolog.Nop())(&handler.ValidationError{Messages: []string{"a", "b"}}, c)

	var body handler.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body.Details) != 2 || body.Details[0] != "a" {
		t.Fatalf("unexpected details: %v", body.Details)
	}
}

func TestHTTPErrorHandler_LogsUnexpected(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/venta", nil), rec)
	c.SetPath("/venta")

	NewHTTPErrorHandler(log)(errors.New("boom"), c)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one log line, got %q", buf.String())
	}
	if entry["error"] != "boom" || entry["path"] != "/venta" || entry["method"] != "GET" {
		t.Fatalf("unexpected log entry: %+v", entry)
	}

	buf.Reset()
	NewHTTPErrorHandler(log)(domain.ErrForbidden, e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder()))
	if buf.Len() != 0 {
		t.Fatalf("known errors must not be logged, got %q", buf.String())
	}
}
