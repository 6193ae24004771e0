package postgres

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

var saleColumns = []string{"cli_id", "emp_id", "tienda_id", "venta_activa", "actualizado_en"}

// SaleRepository implements ports.SaleRepository. Reads preload the
// details ordered by det_id.
type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

var _ ports.SaleRepository = (*SaleRepository)(nil)

func withDetails(db *gorm.DB) *gorm.DB {
	return db.Preload("Details", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("det_id")
	})
}

func (r *SaleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	m := saleModel{
		Date:       sale.Date,
		Total:      sale.Total,
		CustomerID: sale.CustomerID,
		EmployeeID: sale.EmployeeID,
		StoreID:    sale.StoreID,
		Active:     sale.Active,
	}
	if err := r.db.WithContext(ctx).Omit("Customer", "Employee", "Store", "Details").Create(&m).Error; err != nil {
		return err
	}
	sale.ID = m.ID
	return nil
}

func (r *SaleRepository) List(ctx context.Context) ([]domain.Sale, error) {
	var rows []saleModel
	if err := withDetails(r.db.WithContext(ctx)).Order("venta_id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Sale, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *SaleRepository) FindByID(ctx context.Context, id int64) (*domain.Sale, error) {
	var m saleModel
	if err := withDetails(r.db.WithContext(ctx)).Take(&m, id).Error; err != nil {
		return nil, translate(err, nil)
	}
	sale := m.toDomain()
	return &sale, nil
}

func (r *SaleRepository) Update(ctx context.Context, sale *domain.Sale) error {
	m := saleModel{
		ID:         sale.ID,
		CustomerID: sale.CustomerID,
		EmployeeID: sale.EmployeeID,
		StoreID:    sale.StoreID,
		Active:     sale.Active,
	}
	return affected(r.db.WithContext(ctx).Model(&m).Select(saleColumns).Updates(&m))
}

func (r *SaleRepository) UpdateTotal(ctx context.Context, id int64, total decimal.Decimal) error {
	return affected(r.db.WithContext(ctx).
		Model(&saleModel{}).
		Where("venta_id = ?", id).
		Update("venta_total", total))
}

// Delete removes the sale; detalle_factura rows cascade.
func (r *SaleRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&saleModel{}, id))
}
