package models

import "time"

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleDepartmentHead UserRole = "kadep"
	RoleLecturer       UserRole = "dosen"
)

// Valid reports whether the role is one of the two permitted values.
func (r UserRole) Valid() bool {
	return r == RoleDepartmentHead || r == RoleLecturer
}

// User represents an application user stored in the users table. The
// user_id is a natural key, at most 25 characters of [A-Za-z0-9_].
type User struct {
	ID           string    `db:"user_id" json:"user_id"`
	Name         string    `db:"nama" json:"nama"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
