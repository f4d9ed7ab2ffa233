package domain

import "time"

// Role is a named grouping users reference by id.
//
// The reference is validated when a user is created and never re-validated:
// soft-deleting a role later does not invalidate users already pointing at it.
type Role struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	IsDeleted bool      `json:"is_deleted" db:"is_deleted"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Touch refreshes the update timestamp.
func (r *Role) Touch(now time.Time) {
	r.UpdatedAt = now
}

// SoftDelete marks the role inactive, advancing UpdatedAt even when the flag
// was already set.
func (r *Role) SoftDelete(now time.Time) {
	r.IsDeleted = true
	r.Touch(now)
}
