package ports

import (
	"context"

	"github.com/taller/store-api/internal/core/domain"
)

// Password hashes are passed to Create/Update separately from the entity so
// the entity types never hold one. An empty hash on Update keeps the stored
// password; an empty hash on CustomerRepository.Create stores NULL.

type AdminRepository interface {
	CredentialProvider
	Create(ctx context.Context, admin *domain.Admin, passwordHash string) error
	List(ctx context.Context) ([]domain.Admin, error)
	FindByID(ctx context.Context, id int64) (*domain.Admin, error)
	Update(ctx context.Context, admin *domain.Admin, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

type CustomerRepository interface {
	CredentialProvider
	Create(ctx context.Context, customer *domain.Customer, passwordHash string) error
	List(ctx context.Context) ([]domain.Customer, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

// EmployeeFilter narrows employee listings. Zero values mean "no filter".
type EmployeeFilter struct {
	Active   *bool
	Position string
	StoreID  *int64
}

type EmployeeRepository interface {
	CredentialProvider
	Create(ctx context.Context, employee *domain.Employee, passwordHash string) error
	List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error)
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}
