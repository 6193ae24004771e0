package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

var inventoryColumns = []string{"inv_cantidad", "inv_costo_unitario", "prod_id", "tienda_id", "inv_activo", "actualizado_en"}

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

var _ ports.InventoryRepository = (*InventoryRepository)(nil)

func toInventoryModel(item *domain.InventoryItem) inventoryModel {
	return inventoryModel{
		ID:        item.ID,
		Quantity:  item.Quantity,
		UnitCost:  item.UnitCost,
		ProductID: item.ProductID,
		StoreID:   item.StoreID,
		Active:    item.Active,
	}
}

func (r *InventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	m := toInventoryModel(item)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*item = m.toDomain()
	return nil
}

func (r *InventoryRepository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	var rows []inventoryModel
	if err := r.withRelations(ctx).Order("inv_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.InventoryItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *InventoryRepository) FindByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	var m inventoryModel
	if err := r.withRelations(ctx).Take(&m, id).Error; err != nil {
		return nil, translate(err, nil)
	}
	item := m.toDomain()
	return &item, nil
}

func (r *InventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	m := toInventoryModel(item)
	if err := affected(r.db.WithContext(ctx).Model(&m).Select(inventoryColumns).Updates(&m)); err != nil {
		return err
	}
	item.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&inventoryModel{}, id))
}

func (r *InventoryRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Product").Preload("Store")
}
