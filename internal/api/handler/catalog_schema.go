package handler

import (
	"github.com/shopspring/decimal"

	"github.com/taller/store-api/internal/core/ports"
)

// --- Tienda ---

type createStoreRequest struct {
	Name    string `json:"tienda_nombre"    validate:"required,min=3,max=100"`
	Address string `json:"tienda_direccion" validate:"required,min=5,max=150"`
	City    string `json:"tienda_ciudad"    validate:"required,min=2,max=80"`
	Phone   string `json:"tienda_telefono"  validate:"required,min=5,max=20"`
	Active  *bool  `json:"tienda_activa"`
}

type updateStoreRequest struct {
	Name    *string `json:"tienda_nombre"    validate:"omitempty,min=3,max=100"`
	Address *string `json:"tienda_direccion" validate:"omitempty,min=5,max=150"`
	City    *string `json:"tienda_ciudad"    validate:"omitempty,min=2,max=80"`
	Phone   *string `json:"tienda_telefono"  validate:"omitempty,min=5,max=20"`
	Active  *bool   `json:"tienda_activa"`
}

func (r createStoreRequest) toInput() ports.CreateStoreInput {
	return ports.CreateStoreInput{Name: r.Name, Address: r.Address, City: r.City, Phone: r.Phone, Active: r.Active}
}

func (r updateStoreRequest) toInput() ports.UpdateStoreInput {
	return ports.UpdateStoreInput{Name: r.Name, Address: r.Address, City: r.City, Phone: r.Phone, Active: r.Active}
}

// --- Producto ---

type createProductRequest struct {
	Name        string           `json:"prod_nombre"      validate:"required,max=100"`
	Description string           `json:"prod_descripcion"`
	Price       *decimal.Decimal `json:"prod_precio"      validate:"required,min=0"`
	Stock       *int             `json:"prod_stock"       validate:"required,min=0"`
	Active      *bool            `json:"prod_activo"`
	SupplierID  *int64           `json:"prove_id"         validate:"omitempty,gt=0"`
}

type updateProductRequest struct {
	Name        *string          `json:"prod_nombre"      validate:"omitempty,min=1,max=100"`
	Description *string          `json:"prod_descripcion"`
	Price       *decimal.Decimal `json:"prod_precio"      validate:"omitempty,min=0"`
	Stock       *int             `json:"prod_stock"       validate:"omitempty,min=0"`
	Active      *bool            `json:"prod_activo"`
	SupplierID  *int64           `json:"prove_id"         validate:"omitempty,gt=0"`
}

func (r createProductRequest) toInput() ports.CreateProductInput {
	return ports.CreateProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Stock:       *r.Stock,
		Active:      r.Active,
		SupplierID:  r.SupplierID,
	}
}

func (r updateProductRequest) toInput() ports.UpdateProductInput {
	return ports.UpdateProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		Active:      r.Active,
		SupplierID:  r.SupplierID,
	}
}

// --- Proveedor ---

type createSupplierRequest struct {
	Name    string `json:"prove_nombre"    validate:"required,min=3,max=100"`
	Email   string `json:"prove_email"     validate:"required,email,max=100"`
	Phone   string `json:"prove_telefono"  validate:"required,min=7,max=15"`
	Address string `json:"prove_direccion" validate:"required,min=5,max=200"`
	TaxID   string `json:"prove_ruc"       validate:"required,min=5,max=20"`
	Active  *bool  `json:"prove_activo"`
}

type updateSupplierRequest struct {
	Name    *string `json:"prove_nombre"    validate:"omitempty,min=3,max=100"`
	Email   *string `json:"prove_email"     validate:"omitempty,email,max=100"`
	Phone   *string `json:"prove_telefono"  validate:"omitempty,min=7,max=15"`
	Address *string `json:"prove_direccion" validate:"omitempty,min=5,max=200"`
	TaxID   *string `json:"prove_ruc"       validate:"omitempty,min=5,max=20"`
	Active  *bool   `json:"prove_activo"`
}

func (r createSupplierRequest) toInput() ports.CreateSupplierInput {
	return ports.CreateSupplierInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		TaxID:   r.TaxID,
		Active:  r.Active,
	}
}

func (r updateSupplierRequest) toInput() ports.UpdateSupplierInput {
	return ports.UpdateSupplierInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		TaxID:   r.TaxID,
		Active:  r.Active,
	}
}

// --- Inventario ---

type createInventoryRequest struct {
	Quantity  *int             `json:"inv_cantidad"       validate:"required,min=0"`
	UnitCost  *decimal.Decimal `json:"inv_costo_unitario" validate:"required,min=0"`
	ProductID int64            `json:"prod_id"            validate:"required,gt=0"`
	StoreID   int64            `json:"tienda_id"          validate:"required,gt=0"`
	Active    *bool            `json:"inv_activo"`
}

type updateInventoryRequest struct {
	Quantity  *int             `json:"inv_cantidad"       validate:"omitempty,min=0"`
	UnitCost  *decimal.Decimal `json:"inv_costo_unitario" validate:"omitempty,min=0"`
	ProductID *int64           `json:"prod_id"            validate:"omitempty,gt=0"`
	StoreID   *int64           `json:"tienda_id"          validate:"omitempty,gt=0"`
	Active    *bool            `json:"inv_activo"`
}

func (r createInventoryRequest) toInput() ports.CreateInventoryInput {
	return ports.CreateInventoryInput{
		Quantity:  *r.Quantity,
		UnitCost:  *r.UnitCost,
		ProductID: r.ProductID,
		StoreID:   r.StoreID,
		Active:    r.Active,
	}
}

func (r updateInventoryRequest) toInput() ports.UpdateInventoryInput {
	return ports.UpdateInventoryInput{
		Quantity:  r.Quantity,
		UnitCost:  r.UnitCost,
		ProductID: r.ProductID,
		StoreID:   r.StoreID,
		Active:    r.Active,
	}
}

// --- Venta ---

type createSaleRequest struct {
	CustomerID int64 `json:"cli_id"    validate:"required,gt=0"`
	EmployeeID int64 `json:"emp_id"    validate:"required,gt=0"`
	StoreID    int64 `json:"tienda_id" validate:"required,gt=0"`
	Active     *bool `json:"venta_activa"`
}

type updateSaleRequest struct {
	CustomerID *int64 `json:"cli_id"    validate:"omitempty,gt=0"`
	EmployeeID *int64 `json:"emp_id"    validate:"omitempty,gt=0"`
	StoreID    *int64 `json:"tienda_id" validate:"omitempty,gt=0"`
	Active     *bool  `json:"venta_activa"`
}

func (r createSaleRequest) toInput() ports.CreateSaleInput {
	return ports.CreateSaleInput{CustomerID: r.CustomerID, EmployeeID: r.EmployeeID, StoreID: r.StoreID, Active: r.Active}
}

func (r updateSaleRequest) toInput() ports.UpdateSaleInput {
	return ports.UpdateSaleInput{CustomerID: r.CustomerID, EmployeeID: r.EmployeeID, StoreID: r.StoreID, Active: r.Active}
}

// --- Detalle factura ---

type createSaleDetailRequest struct {
	SaleID    int64            `json:"venta_id"            validate:"required,gt=0"`
	ProductID int64            `json:"producto_id"         validate:"required,gt=0"`
	Quantity  int              `json:"det_cantidad"        validate:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"det_precio_unitario" validate:"required,min=0"`
}

type updateSaleDetailRequest struct {
	ProductID *int64           `json:"producto_id"         validate:"omitempty,gt=0"`
	Quantity  *int             `json:"det_cantidad"        validate:"omitempty,min=1"`
	UnitPrice *decimal.Decimal `json:"det_precio_unitario" validate:"omitempty,min=0"`
}

func (r createSaleDetailRequest) toInput() ports.CreateSaleDetailInput {
	return ports.CreateSaleDetailInput{SaleID: r.SaleID, ProductID: r.ProductID, Quantity: r.Quantity, UnitPrice: *r.UnitPrice}
}

func (r updateSaleDetailRequest) toInput() ports.UpdateSaleDetailInput {
	return ports.UpdateSaleDetailInput{ProductID: r.ProductID, Quantity: r.Quantity, UnitPrice: r.UnitPrice}
}
