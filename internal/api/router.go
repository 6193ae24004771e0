package api

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/taller/store-api/internal/api/handler"
	"github.com/taller/store-api/internal/api/middleware"
	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

// Dependencies is everything NewRouter needs to mount the API.
type Dependencies struct {
	Auth        ports.AuthService
	Admins      ports.AdminService
	Customers   ports.CustomerService
	Employees   ports.EmployeeService
	Stores      ports.StoreService
	Products    ports.ProductService
	Suppliers   ports.SupplierService
	Inventory   ports.InventoryService
	Sales       ports.SaleService
	SaleDetails ports.SaleDetailService
	Audit       ports.AuditReader

	Idempotency    ports.IdempotencyStore
	IdempotencyTTL time.Duration

	HealthChecks map[string]handler.HealthCheck
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = handler.StrictJSONSerializer{}
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(middleware.HTTPMetrics())
	e.Use(echomiddleware.Recover())

	authMW := middleware.Auth(deps.Auth)
	idempotent := middleware.Idempotency(deps.Idempotency, deps.IdempotencyTTL, deps.Log)

	adminOnly := middleware.RBAC(domain.RoleAdmin)
	adminOrEmployee := middleware.RBAC(domain.RoleAdmin, domain.RoleEmployee)
	adminOrCustomer := middleware.RBAC(domain.RoleCustomer, domain.RoleAdmin)
	customerOnly := middleware.RBAC(domain.RoleCustomer)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/auth/register", authHandler.Register, idempotent)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/perfil", authHandler.Profile, authMW)

	// --- Administrador ---
	adminHandler := handler.NewAdminHandler(deps.Admins, deps.Audit)
	admins := e.Group("/administrador", authMW, adminOnly)
	admins.POST("", adminHandler.Create)
	admins.GET("", adminHandler.List)
	admins.GET("/panel", adminHandler.Panel)
	admins.GET("/auditoria", adminHandler.Audit)
	admins.GET("/:id", adminHandler.Get)
	admins.PATCH("/:id", adminHandler.Update)
	admins.DELETE("/:id", adminHandler.Delete)

	// --- Cliente ---
	customerHandler := handler.NewCustomerHandler(deps.Customers)
	customers := e.Group("/cliente", authMW)
	customers.POST("", customerHandler.Create)
	customers.GET("", customerHandler.List, adminOnly)
	customers.GET("/perfil/me", customerHandler.Me, customerOnly)
	customers.GET("/:id", customerHandler.Get, adminOrCustomer)
	customers.PATCH("/:id", customerHandler.Update, adminOrCustomer)
	customers.DELETE("/:id", customerHandler.Delete, adminOnly)

	// --- Empleado ---
	employeeHandler := handler.NewEmployeeHandler(deps.Employees)
	employees := e.Group("/empleado", authMW)
	employees.POST("", employeeHandler.Create, adminOnly)
	employees.GET("", employeeHandler.List, adminOrEmployee)
	employees.GET("/tienda/:tiendaId", employeeHandler.ByStore, adminOrEmployee)
	employees.GET("/cargo/:cargo", employeeHandler.ByPosition, adminOrEmployee)
	employees.GET("/:id", employeeHandler.Get, adminOrEmployee)
	employees.PATCH("/:id", employeeHandler.Update, adminOnly)
	employees.PATCH("/:id/activar", employeeHandler.Activate, adminOnly)
	employees.PATCH("/:id/desactivar", employeeHandler.Deactivate, adminOnly)
	employees.DELETE("/:id", employeeHandler.Delete, adminOnly)

	// --- Tienda ---
	storeHandler := handler.NewStoreHandler(deps.Stores)
	stores := e.Group("/tienda", authMW)
	stores.POST("", storeHandler.Create, adminOnly)
	stores.GET("", storeHandler.List)
	stores.GET("/:id", storeHandler.Get)
	stores.GET("/:id/empleados", storeHandler.Employees, adminOrEmployee)
	stores.PATCH("/:id", storeHandler.Update, adminOnly)
	stores.PATCH("/:id/activar", storeHandler.Activate, adminOnly)
	stores.PATCH("/:id/desactivar", storeHandler.Deactivate, adminOnly)
	stores.DELETE("/:id", storeHandler.Delete, adminOnly)

	// --- Producto (reads are public) ---
	productHandler := handler.NewProductHandler(deps.Products)
	e.GET("/producto", productHandler.List)
	e.GET("/producto/:id", productHandler.Get)
	e.POST("/producto", productHandler.Create, authMW)
	e.PATCH("/producto/:id", productHandler.Update, authMW)
	e.DELETE("/producto/:id", productHandler.Delete, authMW)

	// --- Proveedor (reads are public) ---
	supplierHandler := handler.NewSupplierHandler(deps.Suppliers)
	e.GET("/proveedor", supplierHandler.List)
	e.GET("/proveedor/:id", supplierHandler.Get)
	e.POST("/proveedor", supplierHandler.Create, authMW)
	e.PATCH("/proveedor/:id", supplierHandler.Update, authMW)
	e.DELETE("/proveedor/:id", supplierHandler.Delete, authMW)

	// --- Inventario (reads are public) ---
	inventoryHandler := handler.NewInventoryHandler(deps.Inventory)
	e.GET("/inventario", inventoryHandler.List)
	e.GET("/inventario/:id", inventoryHandler.Get)
	e.POST("/inventario", inventoryHandler.Create, authMW)
	e.PATCH("/inventario/:id", inventoryHandler.Update, authMW)
	e.DELETE("/inventario/:id", inventoryHandler.Delete, authMW)

	// --- Venta ---
	saleHandler := handler.NewSaleHandler(deps.Sales)
	sales := e.Group("/venta", authMW)
	sales.POST("", saleHandler.Create, idempotent)
	sales.GET("", saleHandler.List)
	sales.GET("/:id", saleHandler.Get)
	sales.PATCH("/:id", saleHandler.Update)
	sales.PATCH("/:id/recalcular", saleHandler.Recalculate)
	sales.DELETE("/:id", saleHandler.Delete)

	// --- Detalle factura (reads are public) ---
	detailHandler := handler.NewSaleDetailHandler(deps.SaleDetails)
	e.GET("/detalle-factura", detailHandler.List)
	e.GET("/detalle-factura/:id", detailHandler.Get)
	e.POST("/detalle-factura", detailHandler.Create, authMW, idempotent)
	e.PATCH("/detalle-factura/:id", detailHandler.Update, authMW)
	e.DELETE("/detalle-factura/:id", detailHandler.Delete, authMW)

	// --- Health checks, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.HealthChecks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
