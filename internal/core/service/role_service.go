package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/clavetec/accounts-api/internal/api/metrics"
	"github.com/clavetec/accounts-api/internal/core/domain"
	"github.com/clavetec/accounts-api/internal/core/ports"
)

// RoleService implements role CRUD over the credential store.
type RoleService struct {
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, logger: logger}
}

func (s *RoleService) Create(ctx context.Context, name string) (*domain.Role, error) {
	now := time.Now().UTC()
	role := &domain.Role{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.roles.Create(ctx, role)
	if err != nil {
		return nil, s.classify(err)
	}

	metrics.RolesCreatedTotal.Inc()
	s.logger.Info().Int64("role_id", created.ID).Str("name", created.Name).Msg("role created")
	return created, nil
}

func (s *RoleService) FindAll(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roles.FindAll(ctx)
	if err != nil {
		return nil, s.classify(err)
	}
	return roles, nil
}

func (s *RoleService) FindByID(ctx context.Context, id int64) (*domain.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, s.classify(err)
	}
	return role, nil
}

// Update applies a partial update: nil input fields are left unchanged.
func (s *RoleService) Update(ctx context.Context, id int64, input ports.UpdateRoleInput) (*domain.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, s.classify(err)
	}

	if input.Name != nil {
		role.Name = *input.Name
	}
	role.Touch(time.Now().UTC())

	updated, err := s.roles.Update(ctx, role)
	if err != nil {
		return nil, s.classify(err)
	}
	return updated, nil
}

// Remove soft-deletes the role. Users already referencing it are unaffected.
// A second call still succeeds, only advancing updated_at.
func (s *RoleService) Remove(ctx context.Context, id int64) (*domain.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, s.classify(err)
	}

	role.SoftDelete(time.Now().UTC())

	updated, err := s.roles.Update(ctx, role)
	if err != nil {
		return nil, s.classify(err)
	}

	s.logger.Info().Int64("role_id", updated.ID).Msg("role soft-deleted")
	return updated, nil
}

func (s *RoleService) classify(err error) error {
	var dup *domain.DuplicateValueError
	if errors.As(err, &dup) {
		return err
	}
	if errors.Is(err, domain.ErrRoleNotFound) {
		return err
	}
	s.logger.Error().Err(err).Msg("role store failure")
	return domain.ErrInternal
}
