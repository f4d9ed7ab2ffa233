package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clavetec/accounts-api/internal/api/middleware"
	"github.com/clavetec/accounts-api/internal/core/domain"
)

func TestCurrentUser_ResolvedByGuard(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	want := &domain.User{ID: "u-1", Email: "ana@example.com"}
	c.Set(middleware.UserContextKey, want)

	got, err := CurrentUser(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected the guard-stored user, got %+v", got)
	}
}

func TestCurrentUser_MissingIsUnauthenticated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if _, err := CurrentUser(c); err == nil {
		t.Fatal("expected an error when no user was stored")
	} else if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
