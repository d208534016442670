package models

import "time"

// RevokedToken is a denylist entry created on logout. Rows are never
// updated or purged; expires_at is advisory.
type RevokedToken struct {
	ID        string    `db:"id" json:"id"`
	Token     string    `db:"token" json:"-"`
	RevokedAt time.Time `db:"blacklisted_at" json:"blacklisted_at"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	UserID    string    `db:"user_id" json:"user_id"`
}
