package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

const entityEmployee = "empleado"

type EmployeeService struct {
	repo   ports.EmployeeRepository
	stores ports.StoreRepository
	hasher ports.PasswordHasher
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewEmployeeService(
	repo ports.EmployeeRepository,
	stores ports.StoreRepository,
	hasher ports.PasswordHasher,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *EmployeeService {
	return &EmployeeService{repo: repo, stores: stores, hasher: hasher, audit: audit, log: log}
}

func (s *EmployeeService) Create(ctx context.Context, in ports.CreateEmployeeInput) (*domain.Employee, error) {
	if err := s.checkStore(ctx, in.StoreID); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("create employee: hash password: %w", err)
	}

	employee := &domain.Employee{
		Name:     in.Name,
		Email:    in.Email,
		Position: in.Position,
		Active:   orDefault(in.Active, true),
		StoreID:  in.StoreID,
	}
	if err := s.repo.Create(ctx, employee, hash); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}

	record(ctx, s.audit, domain.AuditCreate, entityEmployee, employee.ID)
	s.log.Info().Int64("emp_id", employee.ID).Msg("employee created")
	return employee, nil
}

func (s *EmployeeService) List(ctx context.Context, filter ports.EmployeeFilter) ([]domain.Employee, error) {
	return s.repo.List(ctx, filter)
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFound(fmt.Sprintf("Empleado con ID %d no encontrado", id))
	}
	return employee, err
}

func (s *EmployeeService) Update(ctx context.Context, id int64, in ports.UpdateEmployeeInput) (*domain.Employee, error) {
	employee, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.StoreID != nil {
		if err := s.checkStore(ctx, in.StoreID); err != nil {
			return nil, err
		}
		employee.StoreID = in.StoreID
	}
	if in.Name != nil {
		employee.Name = *in.Name
	}
	if in.Email != nil {
		employee.Email = *in.Email
	}
	if in.Position != nil {
		employee.Position = *in.Position
	}
	if in.Active != nil {
		employee.Active = *in.Active
	}

	var hash string
	if in.Password != nil {
		if hash, err = s.hasher.Hash(*in.Password); err != nil {
			return nil, fmt.Errorf("update employee: hash password: %w", err)
		}
	}

	if err := s.repo.Update(ctx, employee, hash); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}

	record(ctx, s.audit, domain.AuditUpdate, entityEmployee, id)
	return employee, nil
}

func (s *EmployeeService) SetActive(ctx context.Context, id int64, active bool) (*domain.Employee, error) {
	employee, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	employee.Active = active
	if err := s.repo.Update(ctx, employee, ""); err != nil {
		return nil, fmt.Errorf("set employee active: %w", err)
	}

	action := domain.AuditDeactivate
	if active {
		action = domain.AuditActivate
	}
	record(ctx, s.audit, action, entityEmployee, id)
	return employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}

	record(ctx, s.audit, domain.AuditDelete, entityEmployee, id)
	s.log.Info().Int64("emp_id", id).Msg("employee deleted")
	return nil
}

func (s *EmployeeService) checkStore(ctx context.Context, storeID *int64) error {
	if storeID == nil {
		return nil
	}
	_, err := s.stores.FindByID(ctx, *storeID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFound(fmt.Sprintf("Tienda con ID %d no encontrada", *storeID))
	}
	return err
}
