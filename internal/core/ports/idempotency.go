package ports

import (
	"context"
	"time"
)

// CachedResponse is a stored HTTP response replayed for a repeated
// Idempotency-Key.
type CachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// IdempotencyStore stores responses by scope. Get returns (nil, nil) on miss.
type IdempotencyStore interface {
	Get(ctx context.Context, scope string) (*CachedResponse, error)
	Save(ctx context.Context, scope string, resp CachedResponse, ttl time.Duration) error
}
