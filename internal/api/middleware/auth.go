package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/clavetec/accounts-api/internal/api/metrics"
	"github.com/clavetec/accounts-api/internal/core/domain"
	"github.com/clavetec/accounts-api/internal/core/ports"
)

// UserContextKey is the echo context key under which Auth stores the resolved
// *domain.User for downstream handlers.
const UserContextKey = "auth_user"

// Auth validates the bearer token and re-resolves the account from the store
// on every request, so a soft-deleted account loses access immediately rather
// than when its token expires. The guard makes no role-based decision; any
// valid, non-deleted identity is admitted.
func Auth(tokens ports.TokenManager, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokensRejectedTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokensRejectedTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			email, err := tokens.Parse(parts[1])
			if err != nil {
				metrics.TokensRejectedTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByEmail(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					// Deliberately the same message for a forged token and a
					// user deleted since issuance: no account-existence leak.
					metrics.TokensRejectedTotal.WithLabelValues("unknown_user").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token not valid")
				}
				return err
			}

			if user.IsDeleted {
				metrics.TokensRejectedTotal.WithLabelValues("inactive_user").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "inactive user")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
