package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

var storeColumns = []string{"tienda_nombre", "tienda_direccion", "tienda_ciudad", "tienda_telefono", "tienda_activa", "actualizada_en"}

type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

var _ ports.StoreRepository = (*StoreRepository)(nil)

func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) error {
	m := storeModel{
		Name:    store.Name,
		Address: store.Address,
		City:    store.City,
		Phone:   store.Phone,
		Active:  store.Active,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*store = m.toDomain()
	return nil
}

func (r *StoreRepository) List(ctx context.Context, active *bool) ([]domain.Store, error) {
	q := r.db.WithContext(ctx)
	if active != nil {
		q = q.Where("tienda_activa = ?", *active)
	}

	var rows []storeModel
	if err := q.Order("tienda_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Store, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (r *StoreRepository) FindByID(ctx context.Context, id int64) (*domain.Store, error) {
	var m storeModel
	if err := r.db.WithContext(ctx).Take(&m, id).Error; err != nil {
		return nil, translate(err, nil)
	}
	store := m.toDomain()
	return &store, nil
}

func (r *StoreRepository) Update(ctx context.Context, store *domain.Store) error {
	m := storeModel{
		ID:      store.ID,
		Name:    store.Name,
		Address: store.Address,
		City:    store.City,
		Phone:   store.Phone,
		Active:  store.Active,
	}
	if err := affected(r.db.WithContext(ctx).Model(&m).Select(storeColumns).Updates(&m)); err != nil {
		return err
	}
	store.UpdatedAt = m.UpdatedAt
	return nil
}

// Delete removes the store. Employees keep their rows with tienda_id NULL.
func (r *StoreRepository) Delete(ctx context.Context, id int64) error {
	return affected(r.db.WithContext(ctx).Delete(&storeModel{}, id))
}
