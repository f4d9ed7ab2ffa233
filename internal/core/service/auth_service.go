package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/clavetec/accounts-api/internal/api/metrics"
	"github.com/clavetec/accounts-api/internal/core/domain"
	"github.com/clavetec/accounts-api/internal/core/ports"
)

// AuthService implements password login issuing bearer tokens.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenManager
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenManager, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Login verifies credentials and returns the account plus a signed token.
// Unknown email and wrong password both surface as ErrInvalidCredentials so
// callers cannot tell which factor was wrong.
//
// Liveness is deliberately not checked here: a soft-deleted account can still
// log in, but the auth guard rejects its token on the first protected call.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, "", domain.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("login lookup failed")
		return nil, "", domain.ErrInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		s.logger.Error().Err(err).Msg("token issuance failed")
		return nil, "", domain.ErrInternal
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")

	user.PasswordHash = ""
	return user, token, nil
}
