package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

const colAdminPassword = "adm_contrasena"

var adminColumns = []string{"adm_nombre", "adm_usuario", "adm_correo", "adm_activo"}

// AdminRepository implements ports.AdminRepository on the administradores
// table.
type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

var _ ports.AdminRepository = (*AdminRepository)(nil)

func (r *AdminRepository) Role() domain.Role { return domain.RoleAdmin }

func (r *AdminRepository) FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	return r.credential(ctx, "adm_correo = ?", email)
}

func (r *AdminRepository) FindCredentialByID(ctx context.Context, id int64) (*domain.Credential, error) {
	return r.credential(ctx, "adm_id = ?", id)
}

func (r *AdminRepository) credential(ctx context.Context, query string, arg any) (*domain.Credential, error) {
	var m adminModel
	err := r.db.WithContext(ctx).
		Select("adm_id", "adm_correo", colAdminPassword, "adm_activo").
		Where(query, arg).
		Take(&m).Error
	if err != nil {
		return nil, translate(err, nil)
	}
	return &domain.Credential{ID: m.ID, Email: m.Email, PasswordHash: m.Password, Role: domain.RoleAdmin, Active: m.Active}, nil
}

func (r *AdminRepository) Create(ctx context.Context, admin *domain.Admin, passwordHash string) error {
	m := adminModel{
		Name:     admin.Name,
		Username: admin.Username,
		Password: passwordHash,
		Email:    admin.Email,
		Active:   admin.Active,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.duplicate(ctx, err, 0, admin.Username)
	}
	admin.ID = m.ID
	return nil
}

func (r *AdminRepository) List(ctx context.Context) ([]domain.Admin, error) {
	var rows []adminModel
	if err := r.db.WithContext(ctx).Omit(colAdminPassword).Order("adm_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Admin, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id int64) (*domain.Admin, error) {
	var m adminModel
	if err := r.db.WithContext(ctx).Omit(colAdminPassword).Take(&m, id).Error; err != nil {
		return nil, translate(err, nil)
	}
	admin := m.toDomain()
	return &admin, nil
}

func (r *AdminRepository) Update(ctx context.Context, admin *domain.Admin, passwordHash string) error {
	m := adminModel{
		ID:       admin.ID,
		Name:     admin.Name,
		Username: admin.Username,
		Password: passwordHash,
		Email:    admin.Email,
		Active:   admin.Active,
	}
	columns := adminColumns
	if passwordHash != "" {
		columns = append(columns[:len(columns):len(columns)], colAdminPassword)
	}

	res := r.db.WithContext(ctx).Model(&m).Select(columns).Updates(&m)
	if res.Error != nil {
		return r.duplicate(ctx, res.Error, admin.ID, admin.Username)
	}
	return affected(res)
}

func (r *AdminRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&adminModel{}, id))
}

// duplicate tells a username clash from an email clash. The translated
// driver error does not carry the violated constraint, so the username is
// looked up again.
func (r *AdminRepository) duplicate(ctx context.Context, err error, selfID int64, username string) error {
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	var count int64
	lookup := r.db.WithContext(ctx).Model(&adminModel{}).Where("adm_usuario = ?", username)
	if selfID != 0 {
		lookup = lookup.Where("adm_id <> ?", selfID)
	}
	if lookupErr := lookup.Count(&count).Error; lookupErr == nil && count > 0 {
		return domain.ErrDuplicateUsername
	}
	return domain.ErrDuplicateEmail
}
