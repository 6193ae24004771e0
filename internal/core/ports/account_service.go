package ports

import (
	"context"

	"github.com/taller/store-api/internal/core/domain"
)

// Update inputs use pointers: nil leaves the field untouched.

type CreateAdminInput struct {
	Name     string
	Username string
	Email    string
	Password string
	Active   *bool
}

type UpdateAdminInput struct {
	Name     *string
	Username *string
	Email    *string
	Password *string
	Active   *bool
}

type AdminService interface {
	Create(ctx context.Context, in CreateAdminInput) (*domain.Admin, error)
	List(ctx context.Context) ([]domain.Admin, error)
	Get(ctx context.Context, id int64) (*domain.Admin, error)
	Update(ctx context.Context, id int64, in UpdateAdminInput) (*domain.Admin, error)
	Delete(ctx context.Context, id int64) error
}

type CreateCustomerInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Password string // optional
	Active   *bool
}

type UpdateCustomerInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Address  *string
	Password *string
	Active   *bool
}

// CustomerService enforces ownership: an identity with the customer role may
// only read or update its own record.
type CustomerService interface {
	Create(ctx context.Context, in CreateCustomerInput) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, id int64, in UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type CreateEmployeeInput struct {
	Name     string
	Email    string
	Password string
	Position string
	Active   *bool
	StoreID  *int64
}

type UpdateEmployeeInput struct {
	Name     *string
	Email    *string
	Password *string
	Position *string
	Active   *bool
	StoreID  *int64
}

type EmployeeService interface {
	Create(ctx context.Context, in CreateEmployeeInput) (*domain.Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error)
	Get(ctx context.Context, id int64) (*domain.Employee, error)
	Update(ctx context.Context, id int64, in UpdateEmployeeInput) (*domain.Employee, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}
