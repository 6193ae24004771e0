package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

const colEmployeePassword = "emp_contrasena"

var employeeColumns = []string{"emp_nombre", "emp_email", "emp_cargo", "emp_activo", "tienda_id"}

// EmployeeRepository implements ports.EmployeeRepository on the empleados
// table.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

var _ ports.EmployeeRepository = (*EmployeeRepository)(nil)

func (r *EmployeeRepository) Role() domain.Role { return domain.RoleEmployee }

func (r *EmployeeRepository) FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	return r.credential(ctx, "emp_email = ?", email)
}

func (r *EmployeeRepository) FindCredentialByID(ctx context.Context, id int64) (*domain.Credential, error) {
	return r.credential(ctx, "emp_id = ?", id)
}

func (r *EmployeeRepository) credential(ctx context.Context, query string, arg any) (*domain.Credential, error) {
	var m employeeModel
	err := r.db.WithContext(ctx).
		Select("emp_id", "emp_email", colEmployeePassword, "emp_activo").
		Where(query, arg).
		Take(&m).Error
	if err != nil {
		return nil, translate(err, nil)
	}
	return &domain.Credential{ID: m.ID, Email: m.Email, PasswordHash: m.Password, Role: domain.RoleEmployee, Active: m.Active}, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *domain.Employee, passwordHash string) error {
	m := employeeModel{
		Name:     employee.Name,
		Email:    employee.Email,
		Password: passwordHash,
		Position: employee.Position,
		Active:   employee.Active,
		StoreID:  employee.StoreID,
	}
	if err := r.db.WithContext(ctx).Omit("Store").Create(&m).Error; err != nil {
		return translate(err, domain.ErrDuplicateEmail)
	}
	employee.ID = m.ID
	return nil
}

// List applies every non-zero filter field.
func (r *EmployeeRepository) List(ctx context.Context, filter ports.EmployeeFilter) ([]domain.Employee, error) {
	q := r.db.WithContext(ctx).Omit(colEmployeePassword)
	if filter.Active != nil {
		q = q.Where("emp_activo = ?", *filter.Active)
	}
	if filter.Position != "" {
		q = q.Where("emp_cargo = ?", filter.Position)
	}
	if filter.StoreID != nil {
		q = q.Where("tienda_id = ?", *filter.StoreID)
	}

	var rows []employeeModel
	if err := q.Order("emp_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Employee, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var m employeeModel
	if err := r.db.WithContext(ctx).Omit(colEmployeePassword).Take(&m, id).Error; err != nil {
		return nil, translate(err, nil)
	}
	employee := m.toDomain()
	return &employee, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, employee *domain.Employee, passwordHash string) error {
	m := employeeModel{
		ID:       employee.ID,
		Name:     employee.Name,
		Email:    employee.Email,
		Password: passwordHash,
		Position: employee.Position,
		Active:   employee.Active,
		StoreID:  employee.StoreID,
	}
	columns := employeeColumns
	if passwordHash != "" {
		columns = append(columns[:len(columns):len(columns)], colEmployeePassword)
	}

	res := r.db.WithContext(ctx).Model(&m).Select(columns).Updates(&m)
	if res.Error != nil {
		return translate(res.Error, domain.ErrDuplicateEmail)
	}
	return affected(res)
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&employeeModel{}, id))
}
