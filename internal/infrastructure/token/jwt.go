package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// JWTManager issues and verifies HS256 tokens carrying a single email claim
// plus an expiry. The secret is fixed at construction; rotating it invalidates
// every outstanding token.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager creates a manager with the given signing secret and token TTL.
// If ttl <= 0, defaultTTL is used.
func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &JWTManager{secret: []byte(secret), ttl: ttl}
}

func (m *JWTManager) Issue(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(m.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Parse verifies signature, algorithm and expiry and returns the email claim.
func (m *JWTManager) Parse(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("%w: missing email claim", ErrInvalidToken)
	}
	return email, nil
}
