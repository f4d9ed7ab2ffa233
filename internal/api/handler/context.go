package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clavetec/accounts-api/internal/api/middleware"
	"github.com/clavetec/accounts-api/internal/core/domain"
)

// CurrentUser extracts the account resolved by the auth guard. Its presence
// proves the guard ran; a missing value on a protected route is a wiring
// fault and is rejected as unauthenticated.
func CurrentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
