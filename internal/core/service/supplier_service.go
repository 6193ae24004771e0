package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

const entitySupplier = "proveedor"

type SupplierService struct {
	repo  ports.SupplierRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewSupplierService(repo ports.SupplierRepository, audit ports.AuditRecorder, log zerolog.Logger) *SupplierService {
	return &SupplierService{repo: repo, audit: audit, log: log}
}

func (s *SupplierService) Create(ctx context.Context, in ports.CreateSupplierInput) (*domain.Supplier, error) {
	supplier := &domain.Supplier{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Address:  in.Address,
		TaxID:    in.TaxID,
		Active:   orDefault(in.Active, true),
		Products: []domain.Product{},
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}

	record(ctx, s.audit, domain.AuditCreate, entitySupplier, supplier.ID)
	return supplier, nil
}

func (s *SupplierService) List(ctx context.Context) ([]domain.Supplier, error) {
	return s.repo.List(ctx)
}

func (s *SupplierService) Get(ctx context.Context, id int64) (*domain.Supplier, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFound(fmt.Sprintf("Proveedor con ID %d no encontrado", id))
	}
	return supplier, err
}

func (s *SupplierService) Update(ctx context.Context, id int64, in ports.UpdateSupplierInput) (*domain.Supplier, error) {
	supplier, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	if in.TaxID != nil {
		supplier.TaxID = *in.TaxID
	}
	if in.Active != nil {
		supplier.Active = *in.Active
	}

	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, fmt.Errorf("update supplier: %w", err)
	}

	record(ctx, s.audit, domain.AuditUpdate, entitySupplier, id)
	return supplier, nil
}

// Delete removes the supplier. Its products stay in the catalog without one.
func (s *SupplierService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}

	record(ctx, s.audit, domain.AuditDelete, entitySupplier, id)
	return nil
}
