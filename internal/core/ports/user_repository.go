package ports

import (
	"context"

	"github.com/clavetec/accounts-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user rows.
//
// Lookups do not filter soft-deleted rows: deletion only affects
// authentication, which the auth guard checks explicitly.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
