package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/clavetec/accounts-api/internal/core/domain"
)

// uniqueViolation is the Postgres error code for a unique-constraint breach.
const uniqueViolation = "23505"

// RoleRepository persists role rows in Postgres.
type RoleRepository struct {
	db *sqlx.DB
}

func NewRoleRepository(db *sqlx.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	stmt, err := r.db.PrepareNamedContext(ctx, `
		INSERT INTO roles (name, is_deleted, created_at, updated_at)
		VALUES (:name, :is_deleted, :created_at, :updated_at)
		RETURNING id`)
	if err != nil {
		return nil, fmt.Errorf("prepare insert role: %w", err)
	}
	defer stmt.Close()

	if err := stmt.GetContext(ctx, &role.ID, role); err != nil {
		return nil, classifyError(err, "insert role")
	}
	return role, nil
}

func (r *RoleRepository) FindAll(ctx context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	if err := r.db.SelectContext(ctx, &roles, `SELECT * FROM roles ORDER BY id`); err != nil {
		return nil, fmt.Errorf("select roles: %w", err)
	}
	return roles, nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id int64) (*domain.Role, error) {
	var role domain.Role
	err := r.db.QueryRowxContext(ctx, `SELECT * FROM roles WHERE id = $1`, id).StructScan(&role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role by id: %w", err)
	}
	return &role, nil
}

func (r *RoleRepository) Update(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE roles
		SET name = :name, is_deleted = :is_deleted, updated_at = :updated_at
		WHERE id = :id`,
		role)
	if err != nil {
		return nil, classifyError(err, "update role")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, domain.ErrRoleNotFound
	}
	return role, nil
}

// classifyError maps unique violations to domain.DuplicateValueError, keeping
// the store's detail message; everything else is wrapped as-is.
func classifyError(err error, op string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return &domain.DuplicateValueError{Detail: pqErr.Detail}
	}
	return fmt.Errorf("%s: %w", op, err)
}
