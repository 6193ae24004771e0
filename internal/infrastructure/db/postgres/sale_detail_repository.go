package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

var saleDetailColumns = []string{"producto_id", "det_cantidad", "det_precio_unitario", "det_subtotal", "actualizado_en"}

type SaleDetailRepository struct {
	db *gorm.DB
}

func NewSaleDetailRepository(db *gorm.DB) *SaleDetailRepository {
	return &SaleDetailRepository{db: db}
}

var _ ports.SaleDetailRepository = (*SaleDetailRepository)(nil)

func toSaleDetailModel(d *domain.SaleDetail) saleDetailModel {
	return saleDetailModel{
		ID:        d.ID,
		SaleID:    d.SaleID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
		UnitPrice: d.UnitPrice,
		Subtotal:  d.Subtotal,
	}
}

func (r *SaleDetailRepository) Create(ctx context.Context, detail *domain.SaleDetail) error {
	m := toSaleDetailModel(detail)
	if err := r.db.WithContext(ctx).Omit("Product").Create(&m).Error; err != nil {
		return err
	}
	detail.ID = m.ID
	return nil
}

func (r *SaleDetailRepository) List(ctx context.Context) ([]domain.SaleDetail, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *SaleDetailRepository) ListBySale(ctx context.Context, saleID int64) ([]domain.SaleDetail, error) {
	return r.find(r.db.WithContext(ctx).Where("venta_id = ?", saleID))
}

func (r *SaleDetailRepository) find(q *gorm.DB) ([]domain.SaleDetail, error) {
	var rows []saleDetailModel
	if err := q.Order("det_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.SaleDetail, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *SaleDetailRepository) FindByID(ctx context.Context, id int64) (*domain.SaleDetail, error) {
	var m saleDetailModel
	if err := r.db.WithContext(ctx).Take(&m, id).Error; err != nil {
		return nil, translate(err, nil)
	}
	detail := m.toDomain()
	return &detail, nil
}

func (r *SaleDetailRepository) Update(ctx context.Context, detail *domain.SaleDetail) error {
	m := toSaleDetailModel(detail)
	return affected(r.db.WithContext(ctx).Model(&m).Select(saleDetailColumns).Updates(&m))
}

func (r *SaleDetailRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&saleDetailModel{}, id))
}
