package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

const entityProduct = "producto"

type ProductService struct {
	repo      ports.ProductRepository
	suppliers ports.SupplierRepository
	audit     ports.AuditRecorder
	log       zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, suppliers ports.SupplierRepository, audit ports.AuditRecorder, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, suppliers: suppliers, audit: audit, log: log}
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	if err := s.checkSupplier(ctx, in.SupplierID); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Active:      orDefault(in.Active, true),
		SupplierID:  in.SupplierID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	record(ctx, s.audit, domain.AuditCreate, entityProduct, product.ID)
	return product, nil
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFound(fmt.Sprintf("Producto con ID %d no encontrado", id))
	}
	return product, err
}

func (s *ProductService) Update(ctx context.Context, id int64, in ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	if in.SupplierID != nil {
		if err := s.checkSupplier(ctx, in.SupplierID); err != nil {
			return nil, err
		}
		product.SupplierID = in.SupplierID
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	record(ctx, s.audit, domain.AuditUpdate, entityProduct, id)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	record(ctx, s.audit, domain.AuditDelete, entityProduct, id)
	return nil
}

func (s *ProductService) checkSupplier(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	_, err := s.suppliers.FindByID(ctx, *id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFound("Proveedor no encontrado")
	}
	if err != nil {
		return fmt.Errorf("load supplier: %w", err)
	}
	return nil
}
