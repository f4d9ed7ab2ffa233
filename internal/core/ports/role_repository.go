package ports

import (
	"context"

	"github.com/clavetec/accounts-api/internal/core/domain"
)

// RoleRepository defines the persistence contract for role rows.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	FindAll(ctx context.Context) ([]domain.Role, error)
	FindByID(ctx context.Context, id int64) (*domain.Role, error)
	Update(ctx context.Context, role *domain.Role) (*domain.Role, error)
}
