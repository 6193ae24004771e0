package ports

import (
	"context"

	"github.com/taller/store-api/internal/core/domain"
)

// CredentialProvider is the lookup capability every credential category
// exposes to the authentication orchestrator. Both finders return
// domain.ErrNotFound when there is no match.
type CredentialProvider interface {
	Role() domain.Role
	FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error)
	FindCredentialByID(ctx context.Context, id int64) (*domain.Credential, error)
}
