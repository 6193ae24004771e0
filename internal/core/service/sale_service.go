package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

const entitySale = "venta"

type SaleService struct {
	repo      ports.SaleRepository
	details   ports.SaleDetailRepository
	customers ports.CustomerRepository
	employees ports.EmployeeRepository
	stores    ports.StoreRepository
	audit     ports.AuditRecorder
	log       zerolog.Logger
}

func NewSaleService(
	repo ports.SaleRepository,
	details ports.SaleDetailRepository,
	customers ports.CustomerRepository,
	employees ports.EmployeeRepository,
	stores ports.StoreRepository,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *SaleService {
	return &SaleService{
		repo:      repo,
		details:   details,
		customers: customers,
		employees: employees,
		stores:    stores,
		audit:     audit,
		log:       log,
	}
}

// Create opens a sale with a zero total; totals grow as details are added.
func (s *SaleService) Create(ctx context.Context, in ports.CreateSaleInput) (*domain.Sale, error) {
	if err := s.checkRefs(ctx, &in.CustomerID, &in.EmployeeID, &in.StoreID); err != nil {
		return nil, err
	}

	sale := &domain.Sale{
		Date:       time.Now().UTC(),
		Total:      decimal.Zero,
		CustomerID: in.CustomerID,
		EmployeeID: in.EmployeeID,
		StoreID:    in.StoreID,
		Active:     orDefault(in.Active, true),
		Details:    []domain.SaleDetail{},
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}

	record(ctx, s.audit, domain.AuditCreate, entitySale, sale.ID)
	s.log.Info().Int64("venta_id", sale.ID).Int64("tienda_id", sale.StoreID).Msg("sale created")
	return sale, nil
}

func (s *SaleService) List(ctx context.Context) ([]domain.Sale, error) {
	return s.repo.List(ctx)
}

func (s *SaleService) Get(ctx context.Context, id int64) (*domain.Sale, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFound(fmt.Sprintf("Venta con ID %d no encontrada", id))
	}
	return sale, err
}

func (s *SaleService) Update(ctx context.Context, id int64, in ports.UpdateSaleInput) (*domain.Sale, error) {
	sale, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, in.CustomerID, in.EmployeeID, in.StoreID); err != nil {
		return nil, err
	}

	if in.CustomerID != nil {
		sale.CustomerID = *in.CustomerID
	}
	if in.EmployeeID != nil {
		sale.EmployeeID = *in.EmployeeID
	}
	if in.StoreID != nil {
		sale.StoreID = *in.StoreID
	}
	if in.Active != nil {
		sale.Active = *in.Active
	}

	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("update sale: %w", err)
	}

	record(ctx, s.audit, domain.AuditUpdate, entitySale, id)
	return sale, nil
}

// Delete removes the sale; its details go with it (ON DELETE CASCADE).
func (s *SaleService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}

	record(ctx, s.audit, domain.AuditDelete, entitySale, id)
	s.log.Info().Int64("venta_id", id).Msg("sale deleted")
	return nil
}

func (s *SaleService) Recalculate(ctx context.Context, id int64) (*domain.Sale, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	details, err := s.details.ListBySale(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("recalculate sale: list details: %w", err)
	}
	total := domain.SumSubtotals(details)

	if err := s.repo.UpdateTotal(ctx, id, total); err != nil {
		return nil, fmt.Errorf("recalculate sale: %w", err)
	}

	record(ctx, s.audit, domain.AuditRecalculate, entitySale, id)
	s.log.Debug().Int64("venta_id", id).Str("total", total.StringFixed(2)).Msg("sale total recalculated")
	return s.Get(ctx, id)
}

// checkRefs verifies that every non-nil reference exists.
func (s *SaleService) checkRefs(ctx context.Context, customerID, employeeID, storeID *int64) error {
	if customerID != nil {
		if _, err := s.customers.FindByID(ctx, *customerID); err != nil {
			return refError(err, "Cliente no encontrado")
		}
	}
	if employeeID != nil {
		if _, err := s.employees.FindByID(ctx, *employeeID); err != nil {
			return refError(err, "Empleado no encontrado")
		}
	}
	if storeID != nil {
		if _, err := s.stores.FindByID(ctx, *storeID); err != nil {
			return refError(err, "Tienda no encontrada")
		}
	}
	return nil
}

func refError(err error, message string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFound(message)
	}
	return err
}
