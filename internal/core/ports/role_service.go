package ports

import (
	"context"

	"github.com/clavetec/accounts-api/internal/core/domain"
)

// UpdateRoleInput is a partial update: nil fields are left unchanged.
type UpdateRoleInput struct {
	Name *string
}

type RoleService interface {
	Create(ctx context.Context, name string) (*domain.Role, error)
	FindAll(ctx context.Context) ([]domain.Role, error)
	FindByID(ctx context.Context, id int64) (*domain.Role, error)
	Update(ctx context.Context, id int64, input UpdateRoleInput) (*domain.Role, error)
	// Remove soft-deletes the role. Calling it twice still succeeds.
	Remove(ctx context.Context, id int64) (*domain.Role, error)
}
