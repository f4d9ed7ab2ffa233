package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clavetec/accounts-api/internal/api/metrics"
	"github.com/clavetec/accounts-api/internal/core/domain"
	"github.com/clavetec/accounts-api/internal/core/ports"
)

// UserService implements user CRUD over the credential store.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, hasher: hasher, logger: logger}
}

// Create registers a user. The referenced role must exist at creation time;
// it is never re-validated afterwards, so deleting the role later does not
// invalidate this user. The returned object carries no password hash.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if _, err := s.roles.FindByID(ctx, input.RoleID); err != nil {
		return nil, s.classify(err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("password hashing failed")
		return nil, domain.ErrInternal
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		FullName:     input.FullName,
		Email:        domain.NormalizeEmail(input.Email),
		PasswordHash: hash,
		Phone:        input.Phone,
		RoleID:       input.RoleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, s.classify(err)
	}

	metrics.UsersCreatedTotal.Inc()
	s.logger.Info().Str("user_id", created.ID).Int64("role_id", created.RoleID).Msg("user created")

	created.PasswordHash = ""
	return created, nil
}

// FindAll returns every user row, soft-deleted ones included, with hashes stripped.
func (s *UserService) FindAll(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, s.classify(err)
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *UserService) FindByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, s.classify(err)
	}
	return user, nil
}

// Update applies a partial update: nil input fields are left unchanged. A new
// password is re-hashed; a new email is normalized the same way creation does.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, s.classify(err)
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Email != nil {
		user.Email = domain.NormalizeEmail(*input.Email)
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			s.logger.Error().Err(err).Msg("password hashing failed")
			return nil, domain.ErrInternal
		}
		user.PasswordHash = hash
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.RoleID != nil {
		user.RoleID = *input.RoleID
	}
	user.Touch(time.Now().UTC())

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, s.classify(err)
	}
	return updated, nil
}

// Remove soft-deletes the user. The row persists and a second call still
// succeeds, only advancing updated_at.
func (s *UserService) Remove(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, s.classify(err)
	}

	user.SoftDelete(time.Now().UTC())

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, s.classify(err)
	}

	s.logger.Info().Str("user_id", updated.ID).Msg("user soft-deleted")
	return updated, nil
}

// classify re-maps store errors into the domain taxonomy: known sentinels and
// duplicate-value details pass through, everything else is logged and returned
// as an opaque internal fault.
func (s *UserService) classify(err error) error {
	var dup *domain.DuplicateValueError
	if errors.As(err, &dup) {
		return err
	}
	if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrRoleNotFound) {
		return err
	}
	s.logger.Error().Err(err).Msg("user store failure")
	return domain.ErrInternal
}
