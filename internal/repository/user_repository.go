package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/curriculum-api/internal/models"
)

// UserRepository handles persistence for application users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new repository instance.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns all users.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	const query = `SELECT user_id, nama, password_hash, role, created_at, updated_at FROM users ORDER BY user_id`
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FindByID returns a user by its user_id.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	const query = `SELECT user_id, nama, password_hash, role, created_at, updated_at FROM users WHERE user_id = $1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByID checks whether the user_id is already taken.
func (r *UserRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	const query = `SELECT 1 FROM users WHERE user_id = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check user id: %w", err)
	}
	return true, nil
}

// Create persists a new user.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	const query = `INSERT INTO users (user_id, nama, password_hash, role, created_at, updated_at) VALUES (:user_id, :nama, :password_hash, :role, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update modifies user fields and bumps the updated timestamp.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now().UTC()
	const query = `UPDATE users SET nama = :nama, role = :role, updated_at = :updated_at WHERE user_id = :user_id`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// DeleteCascade removes the user after clearing their denylist rows, which
// carry a foreign key back to the users table.
func (r *UserRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete user: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM token_blacklist WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete user tokens: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return tx.Commit()
}
