package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestLogger_LevelFollowsRenderedStatus(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(RequestLogger(zerolog.New(&buf)))
	e.Use(HTTPMetrics())
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/boom", func(echo.Context) error { return errors.New("boom") })

	tests := []struct {
		target    string
		wantLevel string
		wantCode  float64
	}{
		{"/ok", "info", http.StatusOK},
		{"/boom", "error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			buf.Reset()
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			var line map[string]any
			if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
				t.Fatalf("expected one json line, got %q: %v", buf.String(), err)
			}
			if line["level"] != tt.wantLevel || line["status"] != tt.wantCode {
				t.Fatalf("unexpected log line: %v", line)
			}
			if line["route"] != tt.target || line["method"] != http.MethodGet {
				t.Fatalf("missing request fields: %v", line)
			}
		})
	}
}
