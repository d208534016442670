package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/curriculum-api/internal/models"
)

// TokenRepository handles the revoked-token denylist. Rows are inserted on
// logout and only ever read afterwards.
type TokenRepository struct {
	db *sqlx.DB
}

// NewTokenRepository creates a new repository instance.
func NewTokenRepository(db *sqlx.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// IsRevoked reports whether the raw token string is on the denylist.
func (r *TokenRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	const query = `SELECT 1 FROM token_blacklist WHERE token = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, token); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return true, nil
}

// Create inserts a denylist entry.
func (r *TokenRepository) Create(ctx context.Context, entry *models.RevokedToken) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	const query = `INSERT INTO token_blacklist (id, token, blacklisted_at, expires_at, user_id) VALUES (:id, :token, :blacklisted_at, :expires_at, :user_id)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("create revoked token: %w", err)
	}
	return nil
}
