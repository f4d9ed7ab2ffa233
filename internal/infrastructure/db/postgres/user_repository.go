package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clavetec/accounts-api/internal/core/domain"
)

// UserRepository persists user rows in Postgres.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO users (id, full_name, email, password_hash, phone, role_id, is_deleted, created_at, updated_at)
		VALUES (:id, :full_name, :email, :password_hash, :phone, :role_id, :is_deleted, :created_at, :updated_at)`,
		user)
	if err != nil {
		return nil, classifyError(err, "insert user")
	}
	return user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.SelectContext(ctx, &users, `SELECT * FROM users ORDER BY created_at`); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRowxContext(ctx, `SELECT * FROM users WHERE id = $1`, id).StructScan(&user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// FindByEmail matches the stored (normalized) email exactly. No soft-delete
// filter: liveness is the auth guard's concern, not the store's.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRowxContext(ctx, `SELECT * FROM users WHERE email = $1`, email).StructScan(&user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE users
		SET full_name = :full_name, email = :email, password_hash = :password_hash,
		    phone = :phone, role_id = :role_id, is_deleted = :is_deleted, updated_at = :updated_at
		WHERE id = :id`,
		user)
	if err != nil {
		return nil, classifyError(err, "update user")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
