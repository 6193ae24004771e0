package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

type stubEmployeeService struct {
	ports.EmployeeService
	listFn      func(ctx context.Context, filter ports.EmployeeFilter) ([]domain.Employee, error)
	setActiveFn func(ctx context.Context, id int64, active bool) (*domain.Employee, error)
}

func (s *stubEmployeeService) List(ctx context.Context, filter ports.EmployeeFilter) ([]domain.Employee, error) {
	return s.listFn(ctx, filter)
}

func (s *stubEmployeeService) SetActive(ctx context.Context, id int64, active bool) (*domain.Employee, error) {
	return s.setActiveFn(ctx, id, active)
}

type stubProductService struct {
	ports.ProductService
	createFn func(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error)
}

func (s *stubProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, in)
}

type stubSaleService struct {
	ports.SaleService
	recalculateFn func(ctx context.Context, id int64) (*domain.Sale, error)
}

func (s *stubSaleService) Recalculate(ctx context.Context, id int64) (*domain.Sale, error) {
	return s.recalculateFn(ctx, id)
}

type stubSaleDetailService struct {
	ports.SaleDetailService
	createFn func(ctx context.Context, in ports.CreateSaleDetailInput) (*domain.SaleDetail, error)
}

func (s *stubSaleDetailService) Create(ctx context.Context, in ports.CreateSaleDetailInput) (*domain.SaleDetail, error) {
	return s.createFn(ctx, in)
}

func TestEmployeeHandler_ListFilters(t *testing.T) {
	e := newTestEcho()
	var got ports.EmployeeFilter
	stub := &stubEmployeeService{
		listFn: func(_ context.Context, filter ports.EmployeeFilter) ([]domain.Employee, error) {
			got = filter
			return []domain.Employee{}, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/empleado?activo=false&cargo=Cajero", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Active == nil || *got.Active || got.Position != "Cajero" || got.StoreID != nil {
		t.Fatalf("unexpected filter: %+v", got)
	}
	if rec.Body.String() != "[]\n" {
		t.Fatalf("expected empty array, got %q", rec.Body.String())
	}

	c, _ = newJSONContext(e, http.MethodGet, "/empleado?activo=quizas", "")
	expectValidationError(t, handler.List(c), "activo debe ser true o false")

	c, _ = newJSONContext(e, http.MethodGet, "/empleado/tienda/4", "")
	c.SetParamNames("tiendaId")
	c.SetParamValues("4")
	if err := handler.ByStore(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.StoreID == nil || *got.StoreID != 4 {
		t.Fatalf("unexpected store filter: %+v", got)
	}

	c, _ = newJSONContext(e, http.MethodGet, "/empleado/cargo/Gerente", "")
	c.SetParamNames("cargo")
	c.SetParamValues("Gerente")
	if err := handler.ByPosition(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Position != "Gerente" {
		t.Fatalf("unexpected position filter: %+v", got)
	}
}

func TestEmployeeHandler_ActivateDeactivate(t *testing.T) {
	e := newTestEcho()
	var calls []bool
	stub := &stubEmployeeService{
		setActiveFn: func(_ context.Context, id int64, active bool) (*domain.Employee, error) {
			calls = append(calls, active)
			return &domain.Employee{ID: id, Active: active}, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	for _, fn := range []func() error{
		func() error {
			c, _ := newJSONContext(e, http.MethodPatch, "/empleado/3/desactivar", "")
			c.SetParamNames("id")
			c.SetParamValues("3")
			return handler.Deactivate(c)
		},
		func() error {
			c, _ := newJSONContext(e, http.MethodPatch, "/empleado/3/activar", "")
			c.SetParamNames("id")
			c.SetParamValues("3")
			return handler.Activate(c)
		},
	} {
		if err := fn(); err != nil {
			t.Fatalf("handler error: %v", err)
		}
	}
	if len(calls) != 2 || calls[0] || !calls[1] {
		t.Fatalf("unexpected calls: %v", calls)
	}
}

func TestProductHandler_Create_Validation(t *testing.T) {
	e := newTestEcho()
	var got ports.CreateProductInput
	stub := &stubProductService{
		createFn: func(_ context.Context, in ports.CreateProductInput) (*domain.Product, error) {
			got = in
			return &domain.Product{ID: 1, Name: in.Name, Price: in.Price, Stock: in.Stock, Active: true}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/producto", `{"prod_nombre":"Café","prod_stock":3}`)
	expectValidationError(t, handler.Create(c), "prod_precio es obligatorio")

	c, _ = newJSONContext(e, http.MethodPost, "/producto", `{"prod_nombre":"Café","prod_precio":-1,"prod_stock":3}`)
	expectValidationError(t, handler.Create(c), "prod_precio debe ser al menos 0")

	c, rec := newJSONContext(e, http.MethodPost, "/producto", `{"prod_nombre":"Café","prod_precio":12.50,"prod_stock":0}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !got.Price.Equal(decimal.RequireFromString("12.5")) || got.Stock != 0 {
		t.Fatalf("unexpected input: %+v", got)
	}
}

func TestSaleHandler_Recalculate(t *testing.T) {
	e := newTestEcho()
	stub := &stubSaleService{
		recalculateFn: func(_ context.Context, id int64) (*domain.Sale, error) {
			if id != 12 {
				return nil, domain.NewNotFound("Venta no encontrada")
			}
			return &domain.Sale{ID: id, Total: decimal.RequireFromString("9.00"), Details: []domain.SaleDetail{}}, nil
		},
	}
	handler := NewSaleHandler(stub)

	c, rec := newJSONContext(e, http.MethodPatch, "/venta/12/recalcular", "")
	c.SetParamNames("id")
	c.SetParamValues("12")
	if err := handler.Recalculate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decodeBody(t, rec); resp["venta_total"] != "9" {
		t.Fatalf("unexpected total: %v", resp["venta_total"])
	}

	c, _ = newJSONContext(e, http.MethodPatch, "/venta/13/recalcular", "")
	c.SetParamNames("id")
	c.SetParamValues("13")
	if err := handler.Recalculate(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaleDetailHandler_Create_Quantity(t *testing.T) {
	e := newTestEcho()
	stub := &stubSaleDetailService{
		createFn: func(_ context.Context, in ports.CreateSaleDetailInput) (*domain.SaleDetail, error) {
			d := &domain.SaleDetail{ID: 1, SaleID: in.SaleID, ProductID: in.ProductID, Quantity: in.Quantity, UnitPrice: in.UnitPrice}
			d.ApplySubtotal()
			return d, nil
		},
	}
	handler := NewSaleDetailHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/detalle-factura",
		`{"venta_id":1,"producto_id":2,"det_cantidad":0,"det_precio_unitario":1.5}`)
	expectValidationError(t, handler.Create(c), "det_cantidad")

	c, rec := newJSONContext(e, http.MethodPost, "/detalle-factura",
		`{"venta_id":1,"producto_id":2,"det_cantidad":3,"det_precio_unitario":1.5}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if resp := decodeBody(t, rec); resp["det_subtotal"] != "4.5" {
		t.Fatalf("unexpected subtotal: %v", resp["det_subtotal"])
	}
}
