package service

import (
	"context"
	"time"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

// NopAuditRecorder discards every entry.
type NopAuditRecorder struct{}

func (NopAuditRecorder) Record(context.Context, domain.AuditEntry) {}

// record emits an audit entry attributed to the identity carried by ctx.
func record(ctx context.Context, rec ports.AuditRecorder, action domain.AuditAction, entity string, id int64) {
	entry := domain.AuditEntry{
		Action:   action,
		Entity:   entity,
		EntityID: id,
		At:       time.Now().UTC(),
	}
	if actor, ok := domain.IdentityFromContext(ctx); ok {
		entry.ActorID = actor.ID
		entry.ActorRole = actor.Role
	}
	rec.Record(ctx, entry)
}

func orDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
