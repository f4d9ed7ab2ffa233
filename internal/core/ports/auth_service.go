package ports

import (
	"context"

	"github.com/clavetec/accounts-api/internal/core/domain"
)

// AuthService turns raw credentials into a bearer token.
type AuthService interface {
	// Login verifies email + password and returns the account (hash stripped)
	// plus a signed token. Unknown email and wrong password are
	// indistinguishable: both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
