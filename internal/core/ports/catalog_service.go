package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/taller/store-api/internal/core/domain"
)

type CreateStoreInput struct {
	Name    string
	Address string
	City    string
	Phone   string
	Active  *bool
}

type UpdateStoreInput struct {
	Name    *string
	Address *string
	City    *string
	Phone   *string
	Active  *bool
}

type StoreService interface {
	Create(ctx context.Context, in CreateStoreInput) (*domain.Store, error)
	List(ctx context.Context, active *bool) ([]domain.Store, error)
	Get(ctx context.Context, id int64) (*domain.Store, error)
	GetWithEmployees(ctx context.Context, id int64) (*domain.Store, error)
	Update(ctx context.Context, id int64, in UpdateStoreInput) (*domain.Store, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.Store, error)
	Delete(ctx context.Context, id int64) error
}

type CreateSupplierInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	TaxID   string
	Active  *bool
}

type UpdateSupplierInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	TaxID   *string
	Active  *bool
}

type SupplierService interface {
	Create(ctx context.Context, in CreateSupplierInput) (*domain.Supplier, error)
	List(ctx context.Context) ([]domain.Supplier, error)
	Get(ctx context.Context, id int64) (*domain.Supplier, error)
	Update(ctx context.Context, id int64, in UpdateSupplierInput) (*domain.Supplier, error)
	Delete(ctx context.Context, id int64) error
}

type CreateInventoryInput struct {
	Quantity  int
	UnitCost  decimal.Decimal
	ProductID int64
	StoreID   int64
	Active    *bool
}

type UpdateInventoryInput struct {
	Quantity  *int
	UnitCost  *decimal.Decimal
	ProductID *int64
	StoreID   *int64
	Active    *bool
}

type InventoryService interface {
	Create(ctx context.Context, in CreateInventoryInput) (*domain.InventoryItem, error)
	List(ctx context.Context) ([]domain.InventoryItem, error)
	Get(ctx context.Context, id int64) (*domain.InventoryItem, error)
	Update(ctx context.Context, id int64, in UpdateInventoryInput) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id int64) error
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Active      *bool
	SupplierID  *int64
}

type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	Active      *bool
	SupplierID  *int64
}

type ProductService interface {
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, id int64, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type CreateSaleInput struct {
	CustomerID int64
	EmployeeID int64
	StoreID    int64
	Active     *bool
}

type UpdateSaleInput struct {
	CustomerID *int64
	EmployeeID *int64
	StoreID    *int64
	Active     *bool
}

type SaleService interface {
	Create(ctx context.Context, in CreateSaleInput) (*domain.Sale, error)
	List(ctx context.Context) ([]domain.Sale, error)
	Get(ctx context.Context, id int64) (*domain.Sale, error)
	Update(ctx context.Context, id int64, in UpdateSaleInput) (*domain.Sale, error)
	Delete(ctx context.Context, id int64) error
	// Recalculate sets the sale total to the sum of its detail subtotals.
	Recalculate(ctx context.Context, id int64) (*domain.Sale, error)
}

type CreateSaleDetailInput struct {
	SaleID    int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

type UpdateSaleDetailInput struct {
	ProductID *int64
	Quantity  *int
	UnitPrice *decimal.Decimal
}

// SaleDetailService keeps the owning sale's total in step with every change.
type SaleDetailService interface {
	Create(ctx context.Context, in CreateSaleDetailInput) (*domain.SaleDetail, error)
	List(ctx context.Context) ([]domain.SaleDetail, error)
	Get(ctx context.Context, id int64) (*domain.SaleDetail, error)
	Update(ctx context.Context, id int64, in UpdateSaleDetailInput) (*domain.SaleDetail, error)
	Delete(ctx context.Context, id int64) error
}
