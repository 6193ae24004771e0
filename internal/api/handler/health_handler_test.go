package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestHealthHandler_Liveness(t *testing.T) {
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodGet, "/health", "")
	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decodeBody(t, rec); resp["status"] != "ok" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestHealthDependenciesHandler_Readiness(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	t.Run("all up", func(t *testing.T) {
		e := newTestEcho()
		c, rec := newJSONContext(e, http.MethodGet, "/health/ready", "")
		h := NewHealthDependenciesHandler(map[string]HealthCheck{"postgres": up, "mongodb": up, "redis": up})
		if err := h.Readiness(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if resp := decodeBody(t, rec); resp["status"] != "ok" {
			t.Fatalf("unexpected payload: %+v", resp)
		}
	})

	t.Run("one down", func(t *testing.T) {
		e := newTestEcho()
		c, rec := newJSONContext(e, http.MethodGet, "/health/ready", "")
		h := NewHealthDependenciesHandler(map[string]HealthCheck{"postgres": up, "redis": down})
		if err := h.Readiness(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		resp := decodeBody(t, rec)
		deps := resp["dependencies"].(map[string]any)
		redis := deps["redis"].(map[string]any)
		if resp["status"] != "degraded" || redis["error"] != "connection refused" {
			t.Fatalf("unexpected payload: %+v", resp)
		}
	})
}
