package domain

import (
	"strings"
	"time"
)

// User models an account that can authenticate against the API.
//
// The password hash is never serialized. Soft-deleted users keep their row
// (retained for audit) but are rejected by the auth guard.
type User struct {
	ID           string    `json:"id" db:"id"`
	FullName     string    `json:"full_name" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Phone        int64     `json:"phone" db:"phone"`
	RoleID       int64     `json:"role" db:"role_id"`
	IsDeleted    bool      `json:"is_deleted" db:"is_deleted"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Touch refreshes the update timestamp. Services call it before every write.
func (u *User) Touch(now time.Time) {
	u.UpdatedAt = now
}

// SoftDelete marks the user inactive. Idempotent: flipping an already-set flag
// still advances UpdatedAt.
func (u *User) SoftDelete(now time.Time) {
	u.IsDeleted = true
	u.Touch(now)
}

// NormalizeEmail lower-cases and trims an email address. Applied once at user
// creation; lookups afterwards are exact matches against the stored form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
