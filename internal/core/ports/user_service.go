package ports

import (
	"context"

	"github.com/clavetec/accounts-api/internal/core/domain"
)

// CreateUserInput carries the fields required to register a user.
type CreateUserInput struct {
	FullName string
	Email    string
	Password string
	Phone    int64
	RoleID   int64
}

// UpdateUserInput is a partial update: nil fields are left unchanged.
type UpdateUserInput struct {
	FullName *string
	Email    *string
	Password *string
	Phone    *int64
	RoleID   *int64
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// Remove soft-deletes the user. Calling it twice still succeeds.
	Remove(ctx context.Context, id string) (*domain.User, error)
}
