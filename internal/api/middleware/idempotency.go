package middleware

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
	"github.com/taller/store-api/internal/metrics"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "Idempotent-Replayed"

	maxIdempotencyKeyLen = 255
	saveTimeout          = 2 * time.Second
)

// Idempotency replays the stored 2xx response of a POST that repeats an
// Idempotency-Key. Requests without the header are untouched. Cache failures
// are logged and the request proceeds as if the key were new.
func Idempotency(store ports.IdempotencyStore, ttl time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			key := req.Header.Get(HeaderIdempotencyKey)
			if req.Method != http.MethodPost || key == "" {
				return next(c)
			}
			if len(key) > maxIdempotencyKeyLen {
				return echo.NewHTTPError(http.StatusBadRequest, "Idempotency-Key demasiado largo")
			}

			scope := idempotencyScope(c, key)
			cached, err := store.Get(req.Context(), scope)
			if err != nil {
				log.Warn().Err(err).Str("path", req.URL.Path).Msg("idempotency lookup failed")
			}
			if cached != nil {
				metrics.IdempotencyReplaysTotal.Inc()
				c.Response().Header().Set(HeaderReplayed, "true")
				return c.Blob(cached.Status, cached.ContentType, cached.Body)
			}

			res := c.Response()
			capture := &captureWriter{ResponseWriter: res.Writer}
			res.Writer = capture
			defer func() { res.Writer = capture.ResponseWriter }()

			if err := next(c); err != nil {
				return err
			}

			if res.Status < 200 || res.Status >= 300 {
				return nil
			}
			saveCtx, cancel := context.WithTimeout(context.WithoutCancel(req.Context()), saveTimeout)
			defer cancel()
			resp := ports.CachedResponse{
				Status:      res.Status,
				ContentType: res.Header().Get(echo.HeaderContentType),
				Body:        capture.body.Bytes(),
			}
			if err := store.Save(saveCtx, scope, resp, ttl); err != nil {
				log.Warn().Err(err).Str("path", req.URL.Path).Msg("idempotency save failed")
			}
			return nil
		}
	}
}

// idempotencyScope keys the cache by method, path and key. When Auth ran
// first the caller is part of the scope, so two callers reusing a key never
// share an entry.
func idempotencyScope(c echo.Context, key string) string {
	req := c.Request()
	scope := req.Method + " " + req.URL.Path
	if identity, ok := c.Get(IdentityKey).(*domain.Identity); ok && identity != nil {
		scope += " " + identity.Role.String() + ":" + strconv.FormatInt(identity.ID, 10)
	}
	return scope + " " + key
}

// captureWriter tees the response body into a buffer.
type captureWriter struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *captureWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
