package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

const colCustomerPassword = "cli_contrasena"

var customerColumns = []string{"cli_nombre", "cli_correo", "cli_telefono", "cli_direccion", "cli_activo"}

// CustomerRepository implements ports.CustomerRepository on the clientes
// table. Customers created by staff may have no password.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

var _ ports.CustomerRepository = (*CustomerRepository)(nil)

func (r *CustomerRepository) Role() domain.Role { return domain.RoleCustomer }

func (r *CustomerRepository) FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	return r.credential(ctx, "cli_correo = ?", email)
}

func (r *CustomerRepository) FindCredentialByID(ctx context.Context, id int64) (*domain.Credential, error) {
	return r.credential(ctx, "cli_id = ?", id)
}

func (r *CustomerRepository) credential(ctx context.Context, query string, arg any) (*domain.Credential, error) {
	var m customerModel
	err := r.db.WithContext(ctx).
		Select("cli_id", "cli_correo", colCustomerPassword, "cli_activo").
		Where(query, arg).
		Take(&m).Error
	if err != nil {
		return nil, translate(err, nil)
	}
	cred := &domain.Credential{ID: m.ID, Email: m.Email, Role: domain.RoleCustomer, Active: m.Active}
	if m.Password != nil {
		cred.PasswordHash = *m.Password
	}
	return cred, nil
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer, passwordHash string) error {
	m := customerModel{
		Name:    customer.Name,
		Email:   customer.Email,
		Phone:   customer.Phone,
		Address: customer.Address,
		Active:  customer.Active,
	}
	if passwordHash != "" {
		m.Password = &passwordHash
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err, domain.ErrDuplicateEmail)
	}
	customer.ID = m.ID
	return nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var rows []customerModel
	if err := r.db.WithContext(ctx).Omit(colCustomerPassword).Order("cli_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Customer, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var m customerModel
	if err := r.db.WithContext(ctx).Omit(colCustomerPassword).Take(&m, id).Error; err != nil {
		return nil, translate(err, nil)
	}
	customer := m.toDomain()
	return &customer, nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer, passwordHash string) error {
	m := customerModel{
		ID:      customer.ID,
		Name:    customer.Name,
		Email:   customer.Email,
		Phone:   customer.Phone,
		Address: customer.Address,
		Active:  customer.Active,
	}
	columns := customerColumns
	if passwordHash != "" {
		m.Password = &passwordHash
		columns = append(columns[:len(columns):len(columns)], colCustomerPassword)
	}

	res := r.db.WithContext(ctx).Model(&m).Select(columns).Updates(&m)
	if res.Error != nil {
		return translate(res.Error, domain.ErrDuplicateEmail)
	}
	return affected(res)
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&customerModel{}, id))
}
