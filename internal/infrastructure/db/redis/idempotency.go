package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taller/store-api/internal/core/ports"
)

// IdempotencyStore caches write responses so a retried request replays the
// first outcome.
// Key format: idem:<sha256(scope)>
type IdempotencyStore struct {
	client *redis.Client
}

func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

// Get returns the cached response for scope, or nil when there is none.
func (s *IdempotencyStore) Get(ctx context.Context, scope string) (*ports.CachedResponse, error) {
	raw, err := s.client.Get(ctx, idempotencyKey(scope)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("idempotency get: %w", err)
	}

	var resp ports.CachedResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("idempotency decode: %w", err)
	}
	return &resp, nil
}

// Save stores resp under scope unless a response is already cached.
func (s *IdempotencyStore) Save(ctx context.Context, scope string, resp ports.CachedResponse, ttl time.Duration) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("idempotency encode: %w", err)
	}
	if err := s.client.SetNX(ctx, idempotencyKey(scope), raw, ttl).Err(); err != nil {
		return fmt.Errorf("idempotency save: %w", err)
	}
	return nil
}

func idempotencyKey(scope string) string {
	sum := sha256.Sum256([]byte(scope))
	return "idem:" + hex.EncodeToString(sum[:])
}
