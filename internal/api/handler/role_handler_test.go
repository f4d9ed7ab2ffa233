package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clavetec/accounts-api/internal/core/domain"
	"github.com/clavetec/accounts-api/internal/core/ports"
)

type stubRoleService struct {
	createFn func(ctx context.Context, name string) (*domain.Role, error)
	removeFn func(ctx context.Context, id int64) (*domain.Role, error)
}

func (s *stubRoleService) Create(ctx context.Context, name string) (*domain.Role, error) {
	return s.createFn(ctx, name)
}

func (s *stubRoleService) FindAll(ctx context.Context) ([]domain.Role, error) {
	return nil, nil
}

func (s *stubRoleService) FindByID(ctx context.Context, id int64) (*domain.Role, error) {
	return nil, domain.ErrRoleNotFound
}

func (s *stubRoleService) Update(ctx context.Context, id int64, input ports.UpdateRoleInput) (*domain.Role, error) {
	return nil, domain.ErrRoleNotFound
}

func (s *stubRoleService) Remove(ctx context.Context, id int64) (*domain.Role, error) {
	return s.removeFn(ctx, id)
}

func TestRoleHandler_Create_Success(t *testing.T) {
	stub := &stubRoleService{
		createFn: func(ctx context.Context, name string) (*domain.Role, error) {
			if name != "admin" {
				t.Fatalf("unexpected name %q", name)
			}
			return &domain.Role{ID: 1, Name: name}, nil
		},
	}
	h := NewRoleHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/v1/roles", `{"name":"admin"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "admin" {
		t.Fatalf("unexpected payload: %v", resp)
	}
}

func TestRoleHandler_Create_NameTooShort(t *testing.T) {
	stub := &stubRoleService{
		createFn: func(ctx context.Context, name string) (*domain.Role, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewRoleHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/v1/roles", `{"name":"a"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestRoleHandler_Create_NameTooLong(t *testing.T) {
	stub := &stubRoleService{
		createFn: func(ctx context.Context, name string) (*domain.Role, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewRoleHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/v1/roles", `{"name":"abcdefghijklmnopqrstuvwxyz"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestRoleHandler_InvalidID(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{})

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-number")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestRoleHandler_Remove_NotFoundPassthrough(t *testing.T) {
	stub := &stubRoleService{
		removeFn: func(ctx context.Context, id int64) (*domain.Role, error) {
			return nil, domain.ErrRoleNotFound
		},
	}
	h := NewRoleHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.Remove(c); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound passthrough, got %v", err)
	}
}
