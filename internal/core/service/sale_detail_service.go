package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

const entitySaleDetail = "detalle_factura"

type SaleDetailService struct {
	repo     ports.SaleDetailRepository
	products ports.ProductRepository
	sales    ports.SaleService
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewSaleDetailService(
	repo ports.SaleDetailRepository,
	products ports.ProductRepository,
	sales ports.SaleService,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *SaleDetailService {
	return &SaleDetailService{repo: repo, products: products, sales: sales, audit: audit, log: log}
}

func (s *SaleDetailService) Create(ctx context.Context, in ports.CreateSaleDetailInput) (*domain.SaleDetail, error) {
	if _, err := s.sales.Get(ctx, in.SaleID); err != nil {
		return nil, err
	}
	if err := s.checkProduct(ctx, in.ProductID); err != nil {
		return nil, err
	}

	detail := &domain.SaleDetail{
		SaleID:    in.SaleID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
	}
	detail.ApplySubtotal()

	if err := s.repo.Create(ctx, detail); err != nil {
		return nil, fmt.Errorf("create sale detail: %w", err)
	}
	record(ctx, s.audit, domain.AuditCreate, entitySaleDetail, detail.ID)

	if _, err := s.sales.Recalculate(ctx, detail.SaleID); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *SaleDetailService) List(ctx context.Context) ([]domain.SaleDetail, error) {
	return s.repo.List(ctx)
}

func (s *SaleDetailService) Get(ctx context.Context, id int64) (*domain.SaleDetail, error) {
	detail, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFound(fmt.Sprintf("Detalle con ID %d no encontrado", id))
	}
	return detail, err
}

func (s *SaleDetailService) Update(ctx context.Context, id int64, in ports.UpdateSaleDetailInput) (*domain.SaleDetail, error) {
	detail, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.ProductID != nil {
		if err := s.checkProduct(ctx, *in.ProductID); err != nil {
			return nil, err
		}
		detail.ProductID = *in.ProductID
	}
	if in.Quantity != nil {
		detail.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		detail.UnitPrice = *in.UnitPrice
	}
	detail.ApplySubtotal()

	if err := s.repo.Update(ctx, detail); err != nil {
		return nil, fmt.Errorf("update sale detail: %w", err)
	}
	record(ctx, s.audit, domain.AuditUpdate, entitySaleDetail, id)

	if _, err := s.sales.Recalculate(ctx, detail.SaleID); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *SaleDetailService) Delete(ctx context.Context, id int64) error {
	detail, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete sale detail: %w", err)
	}
	record(ctx, s.audit, domain.AuditDelete, entitySaleDetail, id)

	_, err = s.sales.Recalculate(ctx, detail.SaleID)
	return err
}

func (s *SaleDetailService) checkProduct(ctx context.Context, id int64) error {
	_, err := s.products.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFound("Producto no encontrado")
	}
	return err
}
