package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

const entityCustomer = "cliente"

type CustomerService struct {
	repo   ports.CustomerRepository
	hasher ports.PasswordHasher
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, hasher ports.PasswordHasher, audit ports.AuditRecorder, log zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, hasher: hasher, audit: audit, log: log}
}

func (s *CustomerService) Create(ctx context.Context, in ports.CreateCustomerInput) (*domain.Customer, error) {
	var hash string
	if in.Password != "" {
		var err error
		if hash, err = s.hasher.Hash(in.Password); err != nil {
			return nil, fmt.Errorf("create customer: hash password: %w", err)
		}
	}

	customer := &domain.Customer{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		Active:  orDefault(in.Active, true),
	}
	if err := s.repo.Create(ctx, customer, hash); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	record(ctx, s.audit, domain.AuditCreate, entityCustomer, customer.ID)
	s.log.Info().Int64("cli_id", customer.ID).Msg("customer created")
	return customer, nil
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	if err := authorizeSelf(ctx, id); err != nil {
		return nil, err
	}
	return s.find(ctx, id)
}

func (s *CustomerService) Update(ctx context.Context, id int64, in ports.UpdateCustomerInput) (*domain.Customer, error) {
	if err := authorizeSelf(ctx, id); err != nil {
		return nil, err
	}
	customer, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.Active != nil {
		customer.Active = *in.Active
	}

	var hash string
	if in.Password != nil {
		if hash, err = s.hasher.Hash(*in.Password); err != nil {
			return nil, fmt.Errorf("update customer: hash password: %w", err)
		}
	}

	if err := s.repo.Update(ctx, customer, hash); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	record(ctx, s.audit, domain.AuditUpdate, entityCustomer, id)
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}

	record(ctx, s.audit, domain.AuditDelete, entityCustomer, id)
	s.log.Info().Int64("cli_id", id).Msg("customer deleted")
	return nil
}

func (s *CustomerService) find(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFound(fmt.Sprintf("Cliente con ID %d no encontrado", id))
	}
	return customer, err
}

// authorizeSelf restricts customers to their own record. Other roles, and
// calls without an identity, pass through; route guards decide those.
func authorizeSelf(ctx context.Context, id int64) error {
	identity, ok := domain.IdentityFromContext(ctx)
	if ok && identity.Role == domain.RoleCustomer && identity.ID != id {
		return domain.ErrForbidden
	}
	return nil
}
