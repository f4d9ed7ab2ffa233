package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrRoleNotFound = errors.New("role not found")

// ErrInternal is the opaque error returned to callers when the store or
// runtime fails unexpectedly. The real cause is logged server-side only.
var ErrInternal = errors.New("internal error")

// DuplicateValueError reports a unique-constraint violation (Postgres 23505),
// carrying the store's detail message so the caller can see which value clashed.
type DuplicateValueError struct {
	Detail string
}

func (e *DuplicateValueError) Error() string {
	if e.Detail == "" {
		return "duplicate value"
	}
	return e.Detail
}
