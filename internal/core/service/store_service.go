package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

const entityStore = "tienda"

type StoreService struct {
	repo      ports.StoreRepository
	employees ports.EmployeeRepository
	audit     ports.AuditRecorder
	log       zerolog.Logger
}

func NewStoreService(repo ports.StoreRepository, employees ports.EmployeeRepository, audit ports.AuditRecorder, log zerolog.Logger) *StoreService {
	return &StoreService{repo: repo, employees: employees, audit: audit, log: log}
}

func (s *StoreService) Create(ctx context.Context, in ports.CreateStoreInput) (*domain.Store, error) {
	store := &domain.Store{
		Name:    in.Name,
		Address: in.Address,
		City:    in.City,
		Phone:   in.Phone,
		Active:  orDefault(in.Active, true),
	}
	if err := s.repo.Create(ctx, store); err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	record(ctx, s.audit, domain.AuditCreate, entityStore, store.ID)
	s.log.Info().Int64("tienda_id", store.ID).Msg("store created")
	return store, nil
}

func (s *StoreService) List(ctx context.Context, active *bool) ([]domain.Store, error) {
	return s.repo.List(ctx, active)
}

func (s *StoreService) Get(ctx context.Context, id int64) (*domain.Store, error) {
	store, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFound(fmt.Sprintf("Tienda con ID %d no encontrada", id))
	}
	return store, err
}

func (s *StoreService) GetWithEmployees(ctx context.Context, id int64) (*domain.Store, error) {
	store, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	employees, err := s.employees.List(ctx, ports.EmployeeFilter{StoreID: &id})
	if err != nil {
		return nil, fmt.Errorf("list store employees: %w", err)
	}
	store.Employees = employees
	if store.Employees == nil {
		store.Employees = []domain.Employee{}
	}
	return store, nil
}

func (s *StoreService) Update(ctx context.Context, id int64, in ports.UpdateStoreInput) (*domain.Store, error) {
	store, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		store.Name = *in.Name
	}
	if in.Address != nil {
		store.Address = *in.Address
	}
	if in.City != nil {
		store.City = *in.City
	}
	if in.Phone != nil {
		store.Phone = *in.Phone
	}
	if in.Active != nil {
		store.Active = *in.Active
	}

	if err := s.repo.Update(ctx, store); err != nil {
		return nil, fmt.Errorf("update store: %w", err)
	}

	record(ctx, s.audit, domain.AuditUpdate, entityStore, id)
	return store, nil
}

func (s *StoreService) SetActive(ctx context.Context, id int64, active bool) (*domain.Store, error) {
	store, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	store.Active = active
	if err := s.repo.Update(ctx, store); err != nil {
		return nil, fmt.Errorf("set store active: %w", err)
	}

	action := domain.AuditDeactivate
	if active {
		action = domain.AuditActivate
	}
	record(ctx, s.audit, action, entityStore, id)
	return store, nil
}

// Delete removes the store. Employees assigned to it are left unassigned by
// the store's ON DELETE SET NULL constraint.
func (s *StoreService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete store: %w", err)
	}

	record(ctx, s.audit, domain.AuditDelete, entityStore, id)
	s.log.Info().Int64("tienda_id", id).Msg("store deleted")
	return nil
}
