package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

var supplierColumns = []string{"prove_nombre", "prove_email", "prove_telefono", "prove_direccion", "prove_ruc", "prove_activo", "actualizado_en"}

// SupplierRepository implements ports.SupplierRepository on the proveedores
// table. Reads preload the supplier's products.
type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

var _ ports.SupplierRepository = (*SupplierRepository)(nil)

func toSupplierModel(s *domain.Supplier) supplierModel {
	return supplierModel{
		ID:      s.ID,
		Name:    s.Name,
		Email:   s.Email,
		Phone:   s.Phone,
		Address: s.Address,
		TaxID:   s.TaxID,
		Active:  s.Active,
	}
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	m := toSupplierModel(supplier)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.duplicate(ctx, err, 0, supplier.TaxID)
	}
	*supplier = m.toDomain()
	return nil
}

func (r *SupplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	var rows []supplierModel
	if err := r.withProducts(ctx).Order("prove_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Supplier, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *SupplierRepository) FindByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	var m supplierModel
	if err := r.withProducts(ctx).Take(&m, id).Error; err != nil {
		return nil, translate(err, nil)
	}
	supplier := m.toDomain()
	return &supplier, nil
}

func (r *SupplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	m := toSupplierModel(supplier)
	res := r.db.WithContext(ctx).Model(&m).Select(supplierColumns).Updates(&m)
	if res.Error != nil {
		return r.duplicate(ctx, res.Error, supplier.ID, supplier.TaxID)
	}
	if err := affected(res); err != nil {
		return err
	}
	supplier.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *SupplierRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&supplierModel{}, id))
}

func (r *SupplierRepository) withProducts(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Products", func(db *gorm.DB) *gorm.DB {
		return db.Order("prod_id")
	})
}

// duplicate tells a tax id clash from an email clash by looking the tax id
// up again.
func (r *SupplierRepository) duplicate(ctx context.Context, err error, selfID int64, taxID string) error {
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	var count int64
	lookup := r.db.WithContext(ctx).Model(&supplierModel{}).Where("prove_ruc = ?", taxID)
	if selfID != 0 {
		lookup = lookup.Where("prove_id <> ?", selfID)
	}
	if lookupErr := lookup.Count(&count).Error; lookupErr == nil && count > 0 {
		return domain.ErrDuplicateTaxID
	}
	return domain.ErrDuplicateEmail
}
