package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/taller/store-api/internal/core/domain"
)

// All finders return domain.ErrNotFound when the id has no match.

type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) error
	List(ctx context.Context, active *bool) ([]domain.Store, error)
	FindByID(ctx context.Context, id int64) (*domain.Store, error)
	Update(ctx context.Context, store *domain.Store) error
	Delete(ctx context.Context, id int64) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
}

// SupplierRepository loads suppliers together with their products.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	List(ctx context.Context) ([]domain.Supplier, error)
	FindByID(ctx context.Context, id int64) (*domain.Supplier, error)
	Update(ctx context.Context, supplier *domain.Supplier) error
	Delete(ctx context.Context, id int64) error
}

// InventoryRepository loads stock rows together with their product and store.
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	List(ctx context.Context) ([]domain.InventoryItem, error)
	FindByID(ctx context.Context, id int64) (*domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
	Delete(ctx context.Context, id int64) error
}

// SaleRepository loads sales together with their details.
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	List(ctx context.Context) ([]domain.Sale, error)
	FindByID(ctx context.Context, id int64) (*domain.Sale, error)
	Update(ctx context.Context, sale *domain.Sale) error
	UpdateTotal(ctx context.Context, id int64, total decimal.Decimal) error
	Delete(ctx context.Context, id int64) error
}

type SaleDetailRepository interface {
	Create(ctx context.Context, detail *domain.SaleDetail) error
	List(ctx context.Context) ([]domain.SaleDetail, error)
	ListBySale(ctx context.Context, saleID int64) ([]domain.SaleDetail, error)
	FindByID(ctx context.Context, id int64) (*domain.SaleDetail, error)
	Update(ctx context.Context, detail *domain.SaleDetail) error
	Delete(ctx context.Context, id int64) error
}
