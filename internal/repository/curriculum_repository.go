package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/curriculum-api/internal/models"
)

// CurriculumRepository handles persistence for curricula.
type CurriculumRepository struct {
	db *sqlx.DB
}

// NewCurriculumRepository creates a new repository instance.
func NewCurriculumRepository(db *sqlx.DB) *CurriculumRepository {
	return &CurriculumRepository{db: db}
}

// List returns all curricula, unfiltered.
func (r *CurriculumRepository) List(ctx context.Context) ([]models.Curriculum, error) {
	const query = `SELECT id_kurikulum, nama_kurikulum, revisi, status_kurikulum, created_at, updated_at FROM kurikulum ORDER BY created_at`
	var items []models.Curriculum
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list curricula: %w", err)
	}
	return items, nil
}

// FindByID returns a curriculum by id.
func (r *CurriculumRepository) FindByID(ctx context.Context, id string) (*models.Curriculum, error) {
	const query = `SELECT id_kurikulum, nama_kurikulum, revisi, status_kurikulum, created_at, updated_at FROM kurikulum WHERE id_kurikulum = $1`
	var item models.Curriculum
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, err
	}
	return &item, nil
}

// ExistsByName checks global uniqueness of the curriculum name.
func (r *CurriculumRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	query := "SELECT 1 FROM kurikulum WHERE nama_kurikulum = $1"
	args := []interface{}{name}
	if excludeID != "" {
		query += " AND id_kurikulum <> $2"
		args = append(args, excludeID)
	}

	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check curriculum name: %w", err)
	}
	return true, nil
}

// Create persists a new curriculum, generating its UUID.
func (r *CurriculumRepository) Create(ctx context.Context, item *models.Curriculum) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	const query = `INSERT INTO kurikulum (id_kurikulum, nama_kurikulum, revisi, status_kurikulum, created_at, updated_at) VALUES (:id_kurikulum, :nama_kurikulum, :revisi, :status_kurikulum, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("create curriculum: %w", err)
	}
	return nil
}

// Update modifies a curriculum and bumps its updated timestamp.
func (r *CurriculumRepository) Update(ctx context.Context, item *models.Curriculum) error {
	item.UpdatedAt = time.Now().UTC()
	const query = `UPDATE kurikulum SET nama_kurikulum = :nama_kurikulum, revisi = :revisi, status_kurikulum = :status_kurikulum, updated_at = :updated_at WHERE id_kurikulum = :id_kurikulum`
	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("update curriculum: %w", err)
	}
	return nil
}

// DeleteCascade removes the curriculum together with its outcome links,
// indicators and CPLs inside one transaction. The schema declares the
// foreign keys without ON DELETE CASCADE, so the order matters.
func (r *CurriculumRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete curriculum: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	steps := []string{
		`DELETE FROM cpl_matkul WHERE id_kurikulum = $1`,
		`DELETE FROM indikator_cpl WHERE id_kurikulum = $1`,
		`DELETE FROM cpl WHERE id_kurikulum = $1`,
		`DELETE FROM kurikulum WHERE id_kurikulum = $1`,
	}
	for _, step := range steps {
		if _, err := tx.ExecContext(ctx, step, id); err != nil {
			return fmt.Errorf("delete curriculum cascade: %w", err)
		}
	}

	return tx.Commit()
}

// ListCPL returns the code and description of every CPL in the curriculum.
func (r *CurriculumRepository) ListCPL(ctx context.Context, curriculumID string) ([]models.CPLSummary, error) {
	const query = `SELECT id_cpl, deskripsi FROM cpl WHERE id_kurikulum = $1 ORDER BY id_cpl`
	var items []models.CPLSummary
	if err := r.db.SelectContext(ctx, &items, query, curriculumID); err != nil {
		return nil, fmt.Errorf("list curriculum cpl: %w", err)
	}
	return items, nil
}
