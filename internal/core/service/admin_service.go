package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taller/store-api/internal/core/domain"
	"github.com/taller/store-api/internal/core/ports"
)

const entityAdmin = "administrador"

type AdminService struct {
	repo   ports.AdminRepository
	hasher ports.PasswordHasher
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewAdminService(repo ports.AdminRepository, hasher ports.PasswordHasher, audit ports.AuditRecorder, log zerolog.Logger) *AdminService {
	return &AdminService{repo: repo, hasher: hasher, audit: audit, log: log}
}

func (s *AdminService) Create(ctx context.Context, in ports.CreateAdminInput) (*domain.Admin, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("create admin: hash password: %w", err)
	}

	admin := &domain.Admin{
		Name:     in.Name,
		Username: in.Username,
		Email:    in.Email,
		Active:   orDefault(in.Active, true),
	}
	if err := s.repo.Create(ctx, admin, hash); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	record(ctx, s.audit, domain.AuditCreate, entityAdmin, admin.ID)
	s.log.Info().Int64("adm_id", admin.ID).Msg("admin created")
	return admin, nil
}

func (s *AdminService) List(ctx context.Context) ([]domain.Admin, error) {
	return s.repo.List(ctx)
}

func (s *AdminService) Get(ctx context.Context, id int64) (*domain.Admin, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFound(fmt.Sprintf("Administrador con ID %d no encontrado", id))
	}
	return admin, err
}

// Update applies a partial change. The password is re-hashed only when the
// update carries one.
func (s *AdminService) Update(ctx context.Context, id int64, in ports.UpdateAdminInput) (*domain.Admin, error) {
	admin, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		admin.Name = *in.Name
	}
	if in.Username != nil {
		admin.Username = *in.Username
	}
	if in.Email != nil {
		admin.Email = *in.Email
	}
	if in.Active != nil {
		admin.Active = *in.Active
	}

	var hash string
	if in.Password != nil {
		if hash, err = s.hasher.Hash(*in.Password); err != nil {
			return nil, fmt.Errorf("update admin: hash password: %w", err)
		}
	}

	if err := s.repo.Update(ctx, admin, hash); err != nil {
		return nil, fmt.Errorf("update admin: %w", err)
	}

	record(ctx, s.audit, domain.AuditUpdate, entityAdmin, id)
	return admin, nil
}

func (s *AdminService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}

	record(ctx, s.audit, domain.AuditDelete, entityAdmin, id)
	s.log.Info().Int64("adm_id", id).Msg("admin deleted")
	return nil
}
