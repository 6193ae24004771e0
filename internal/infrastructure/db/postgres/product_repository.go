package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

var productColumns = []string{"prod_nombre", "prod_descripcion", "prod_precio", "prod_stock", "prod_activo", "prove_id", "actualizado_en"}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

var _ ports.ProductRepository = (*ProductRepository)(nil)

func toProductModel(p *domain.Product) productModel {
	return productModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Active:      p.Active,
		SupplierID:  p.SupplierID,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	m := toProductModel(product)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*product = m.toDomain()
	return nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	var rows []productModel
	if err := r.db.WithContext(ctx).Order("prod_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var m productModel
	if err := r.db.WithContext(ctx).Take(&m, id).Error; err != nil {
		return nil, translate(err, nil)
	}
	product := m.toDomain()
	return &product, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	m := toProductModel(product)
	if err := affected(r.db.WithContext(ctx).Model(&m).Select(productColumns).Updates(&m)); err != nil {
		return err
	}
	product.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&productModel{}, id))
}
