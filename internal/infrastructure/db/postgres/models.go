package postgres

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/taller/store-api/internal/core/domain"
)

type adminModel struct {
	ID       int64  `gorm:"column:adm_id;primaryKey"`
	Name     string `gorm:"column:adm_nombre;size:100;not null"`
	Username string `gorm:"column:adm_usuario;size:50;not null;uniqueIndex"`
	Password string `gorm:"column:adm_contrasena;not null"`
	Email    string `gorm:"column:adm_correo;size:100;not null;uniqueIndex"`
	Active   bool   `gorm:"column:adm_activo;not null"`
}

func (adminModel) TableName() string { return "administradores" }

func (m adminModel) toDomain() domain.Admin {
	return domain.Admin{ID: m.ID, Name: m.Name, Username: m.Username, Email: m.Email, Active: m.Active}
}

type customerModel struct {
	ID       int64   `gorm:"column:cli_id;primaryKey"`
	Name     string  `gorm:"column:cli_nombre;size:100;not null"`
	Email    string  `gorm:"column:cli_correo;size:100;not null;uniqueIndex"`
	Password *string `gorm:"column:cli_contrasena"`
	Phone    string  `gorm:"column:cli_telefono;size:15;not null"`
	Address  string  `gorm:"column:cli_direccion;size:200;not null"`
	Active   bool    `gorm:"column:cli_activo;not null"`
}

func (customerModel) TableName() string { return "clientes" }

func (m customerModel) toDomain() domain.Customer {
	return domain.Customer{ID: m.ID, Name: m.Name, Email: m.Email, Phone: m.Phone, Address: m.Address, Active: m.Active}
}

type storeModel struct {
	ID        int64     `gorm:"column:tienda_id;primaryKey"`
	Name      string    `gorm:"column:tienda_nombre;size:100;not null"`
	Address   string    `gorm:"column:tienda_direccion;size:150;not null"`
	City      string    `gorm:"column:tienda_ciudad;size:80;not null"`
	Phone     string    `gorm:"column:tienda_telefono;size:20;not null"`
	Active    bool      `gorm:"column:tienda_activa;not null"`
	CreatedAt time.Time `gorm:"column:creada_en;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:actualizada_en;autoUpdateTime"`
}

func (storeModel) TableName() string { return "tiendas" }

func (m storeModel) toDomain() domain.Store {
	return domain.Store{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		City:      m.City,
		Phone:     m.Phone,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type employeeModel struct {
	ID       int64       `gorm:"column:emp_id;primaryKey"`
	Name     string      `gorm:"column:emp_nombre;size:100;not null"`
	Email    string      `gorm:"column:emp_email;size:100;not null;uniqueIndex"`
	Password string      `gorm:"column:emp_contrasena;not null"`
	Position string      `gorm:"column:emp_cargo;size:50;not null;index"`
	Active   bool        `gorm:"column:emp_activo;not null"`
	StoreID  *int64      `gorm:"column:tienda_id;index"`
	Store    *storeModel `gorm:"foreignKey:StoreID;constraint:OnDelete:SET NULL"`
}

func (employeeModel) TableName() string { return "empleados" }

func (m employeeModel) toDomain() domain.Employee {
	return domain.Employee{ID: m.ID, Name: m.Name, Email: m.Email, Position: m.Position, Active: m.Active, StoreID: m.StoreID}
}

type supplierModel struct {
	ID        int64          `gorm:"column:prove_id;primaryKey"`
	Name      string         `gorm:"column:prove_nombre;size:100;not null"`
	Email     string         `gorm:"column:prove_email;size:100;not null;uniqueIndex"`
	Phone     string         `gorm:"column:prove_telefono;size:15;not null"`
	Address   string         `gorm:"column:prove_direccion;size:200;not null"`
	TaxID     string         `gorm:"column:prove_ruc;size:20;not null;uniqueIndex"`
	Active    bool           `gorm:"column:prove_activo;not null"`
	CreatedAt time.Time      `gorm:"column:creado_en;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:actualizado_en;autoUpdateTime"`
	Products  []productModel `gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL"`
}

func (supplierModel) TableName() string { return "proveedores" }

func (m supplierModel) toDomain() domain.Supplier {
	products := make([]domain.Product, 0, len(m.Products))
	for _, p := range m.Products {
		products = append(products, p.toDomain())
	}
	return domain.Supplier{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		TaxID:     m.TaxID,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Products:  products,
	}
}

type productModel struct {
	ID          int64           `gorm:"column:prod_id;primaryKey"`
	Name        string          `gorm:"column:prod_nombre;size:100;not null"`
	Description string          `gorm:"column:prod_descripcion;type:text"`
	Price       decimal.Decimal `gorm:"column:prod_precio;type:decimal(10,2);not null"`
	Stock       int             `gorm:"column:prod_stock;not null"`
	Active      bool            `gorm:"column:prod_activo;not null"`
	SupplierID  *int64          `gorm:"column:prove_id;index"`
	CreatedAt   time.Time       `gorm:"column:creado_en;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:actualizado_en;autoUpdateTime"`
}

func (productModel) TableName() string { return "productos" }

func (m productModel) toDomain() domain.Product {
	return domain.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		Active:      m.Active,
		SupplierID:  m.SupplierID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type inventoryModel struct {
	ID        int64           `gorm:"column:inv_id;primaryKey"`
	Quantity  int             `gorm:"column:inv_cantidad;not null;default:0"`
	UnitCost  decimal.Decimal `gorm:"column:inv_costo_unitario;type:decimal(10,2);not null;default:0"`
	ProductID int64           `gorm:"column:prod_id;not null;index"`
	StoreID   int64           `gorm:"column:tienda_id;not null;index"`
	Active    bool            `gorm:"column:inv_activo;not null"`
	CreatedAt time.Time       `gorm:"column:creado_en;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:actualizado_en;autoUpdateTime"`
	Product   *productModel   `gorm:"foreignKey:ProductID"`
	Store     *storeModel     `gorm:"foreignKey:StoreID"`
}

func (inventoryModel) TableName() string { return "inventarios" }

func (m inventoryModel) toDomain() domain.InventoryItem {
	item := domain.InventoryItem{
		ID:        m.ID,
		Quantity:  m.Quantity,
		UnitCost:  m.UnitCost,
		ProductID: m.ProductID,
		StoreID:   m.StoreID,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Product != nil {
		product := m.Product.toDomain()
		item.Product = &product
	}
	if m.Store != nil {
		store := m.Store.toDomain()
		item.Store = &store
	}
	return item
}

type saleModel struct {
	ID         int64             `gorm:"column:venta_id;primaryKey"`
	Date       time.Time         `gorm:"column:venta_fecha;type:date;not null"`
	Total      decimal.Decimal   `gorm:"column:venta_total;type:decimal(12,2);not null"`
	CustomerID int64             `gorm:"column:cli_id;not null;index"`
	EmployeeID int64             `gorm:"column:emp_id;not null;index"`
	StoreID    int64             `gorm:"column:tienda_id;not null;index"`
	Active     bool              `gorm:"column:venta_activa;not null"`
	CreatedAt  time.Time         `gorm:"column:creado_en;autoCreateTime"`
	UpdatedAt  time.Time         `gorm:"column:actualizado_en;autoUpdateTime"`
	Customer   *customerModel    `gorm:"foreignKey:CustomerID"`
	Employee   *employeeModel    `gorm:"foreignKey:EmployeeID"`
	Store      *storeModel       `gorm:"foreignKey:StoreID"`
	Details    []saleDetailModel `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

func (saleModel) TableName() string { return "ventas" }

func (m saleModel) toDomain() domain.Sale {
	details := make([]domain.SaleDetail, 0, len(m.Details))
	for _, d := range m.Details {
		details = append(details, d.toDomain())
	}
	return domain.Sale{
		ID:         m.ID,
		Date:       m.Date,
		Total:      m.Total,
		CustomerID: m.CustomerID,
		EmployeeID: m.EmployeeID,
		StoreID:    m.StoreID,
		Active:     m.Active,
		Details:    details,
	}
}

type saleDetailModel struct {
	ID        int64           `gorm:"column:det_id;primaryKey"`
	SaleID    int64           `gorm:"column:venta_id;not null;index"`
	ProductID int64           `gorm:"column:producto_id;not null;index"`
	Quantity  int             `gorm:"column:det_cantidad;not null"`
	UnitPrice decimal.Decimal `gorm:"column:det_precio_unitario;type:decimal(10,2);not null"`
	Subtotal  decimal.Decimal `gorm:"column:det_subtotal;type:decimal(12,2);not null"`
	CreatedAt time.Time       `gorm:"column:creado_en;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:actualizado_en;autoUpdateTime"`
	Product   *productModel   `gorm:"foreignKey:ProductID"`
}

func (saleDetailModel) TableName() string { return "detalle_factura" }

func (m saleDetailModel) toDomain() domain.SaleDetail {
	return domain.SaleDetail{
		ID:        m.ID,
		SaleID:    m.SaleID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		Subtotal:  m.Subtotal,
	}
}
