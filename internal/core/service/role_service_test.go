package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clavetec/accounts-api/internal/core/domain"
	"github.com/clavetec/accounts-api/internal/core/ports"
)

func TestRoleService_Create(t *testing.T) {
	roles := newStubRoleRepo()
	svc := NewRoleService(roles, zerolog.Nop())

	role, err := svc.Create(context.Background(), "admin")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if role.ID == 0 {
		t.Fatalf("expected an assigned id")
	}
	if role.Name != "admin" {
		t.Fatalf("unexpected name %q", role.Name)
	}
	if role.CreatedAt.IsZero() || role.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestRoleService_Create_DuplicateName(t *testing.T) {
	roles := newStubRoleRepo()
	svc := NewRoleService(roles, zerolog.Nop())

	if _, err := svc.Create(context.Background(), "admin"); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), "admin")
	var dup *domain.DuplicateValueError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateValueError, got %v", err)
	}
}

func TestRoleService_FindByID_NotFound(t *testing.T) {
	roles := newStubRoleRepo()
	svc := NewRoleService(roles, zerolog.Nop())

	if _, err := svc.FindByID(context.Background(), 42); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestRoleService_Update_Partial(t *testing.T) {
	roles := newStubRoleRepo()
	svc := NewRoleService(roles, zerolog.Nop())

	created, err := svc.Create(context.Background(), "admin")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	name := "operator"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateRoleInput{Name: &name})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "operator" {
		t.Fatalf("expected name to change, got %q", updated.Name)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("expected updated_at to advance")
	}

	// Nil input leaves the name untouched but still touches the row.
	unchanged, err := svc.Update(context.Background(), created.ID, ports.UpdateRoleInput{})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if unchanged.Name != "operator" {
		t.Fatalf("expected name to stay, got %q", unchanged.Name)
	}
}

func TestRoleService_Remove_Idempotent(t *testing.T) {
	roles := newStubRoleRepo()
	svc := NewRoleService(roles, zerolog.Nop())

	created, err := svc.Create(context.Background(), "admin")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, err := svc.Remove(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("first Remove returned error: %v", err)
	}
	if !first.IsDeleted {
		t.Fatalf("expected is_deleted after remove")
	}

	second, err := svc.Remove(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("second Remove must still succeed, got %v", err)
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Fatalf("expected updated_at to advance on the second remove")
	}
}

func TestRoleService_StoreFailureIsOpaque(t *testing.T) {
	roles := newStubRoleRepo()
	roles.forced = errors.New("connection refused")
	svc := NewRoleService(roles, zerolog.Nop())

	if _, err := svc.FindAll(context.Background()); !errors.Is(err, domain.ErrInternal) {
		t.Fatalf("expected opaque ErrInternal, got %v", err)
	}
}
