package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Store is a physical shop of the chain.
type Store struct {
	ID        int64      `json:"tienda_id"`
	Name      string     `json:"tienda_nombre"`
	Address   string     `json:"tienda_direccion"`
	City      string     `json:"tienda_ciudad"`
	Phone     string     `json:"tienda_telefono"`
	Active    bool       `json:"tienda_activa"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Employees []Employee `json:"empleados,omitempty"`
}

// Product is a sellable item.
type Product struct {
	ID          int64           `json:"prod_id"`
	Name        string          `json:"prod_nombre"`
	Description string          `json:"prod_descripcion,omitempty"`
	Price       decimal.Decimal `json:"prod_precio"`
	Stock       int             `json:"prod_stock"`
	Active      bool            `json:"prod_activo"`
	SupplierID  *int64          `json:"prove_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Supplier provides products to the chain.
type Supplier struct {
	ID        int64     `json:"prove_id"`
	Name      string    `json:"prove_nombre"`
	Email     string    `json:"prove_email"`
	Phone     string    `json:"prove_telefono"`
	Address   string    `json:"prove_direccion"`
	TaxID     string    `json:"prove_ruc"`
	Active    bool      `json:"prove_activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Products  []Product `json:"productos"`
}

// InventoryItem is the stock of one product held by one store.
type InventoryItem struct {
	ID        int64           `json:"inv_id"`
	Quantity  int             `json:"inv_cantidad"`
	UnitCost  decimal.Decimal `json:"inv_costo_unitario"`
	ProductID int64           `json:"prod_id"`
	StoreID   int64           `json:"tienda_id"`
	Active    bool            `json:"inv_activo"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Product   *Product        `json:"producto,omitempty"`
	Store     *Store          `json:"tienda,omitempty"`
}
