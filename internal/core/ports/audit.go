package ports

import (
	"context"

	"github.com/taller/store-api/internal/core/domain"
)

// AuditRecorder accepts audit entries without blocking the caller.
type AuditRecorder interface {
	Record(ctx context.Context, entry domain.AuditEntry)
}

// AuditFilter narrows audit listings. Limit is clamped by the repository.
type AuditFilter struct {
	Entity string
	Limit  int
}

// AuditRepository persists the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, entry domain.AuditEntry) error
	List(ctx context.Context, filter AuditFilter) ([]domain.AuditEntry, error)
}

// AuditReader lists recorded entries, newest first.
type AuditReader interface {
	List(ctx context.Context, filter AuditFilter) ([]domain.AuditEntry, error)
}
