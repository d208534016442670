package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/curriculum-api/internal/models"
)

// CPLRepository handles persistence for learning outcomes.
type CPLRepository struct {
	db *sqlx.DB
}

// NewCPLRepository creates a new repository instance.
func NewCPLRepository(db *sqlx.DB) *CPLRepository {
	return &CPLRepository{db: db}
}

// Find returns the CPL identified by (curriculum, code).
func (r *CPLRepository) Find(ctx context.Context, curriculumID, code string) (*models.CPL, error) {
	const query = `SELECT id_kurikulum, id_cpl, deskripsi FROM cpl WHERE id_kurikulum = $1 AND id_cpl = $2`
	var item models.CPL
	if err := r.db.GetContext(ctx, &item, query, curriculumID, code); err != nil {
		return nil, err
	}
	return &item, nil
}

// Exists checks whether the (curriculum, code) pair is already taken.
func (r *CPLRepository) Exists(ctx context.Context, curriculumID, code string) (bool, error) {
	const query = `SELECT 1 FROM cpl WHERE id_kurikulum = $1 AND id_cpl = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, curriculumID, code); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check cpl: %w", err)
	}
	return true, nil
}

// Create persists a new CPL.
func (r *CPLRepository) Create(ctx context.Context, item *models.CPL) error {
	const query = `INSERT INTO cpl (id_kurikulum, id_cpl, deskripsi) VALUES (:id_kurikulum, :id_cpl, :deskripsi)`
	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("create cpl: %w", err)
	}
	return nil
}

// UpdateDescription changes the only mutable CPL attribute.
func (r *CPLRepository) UpdateDescription(ctx context.Context, curriculumID, code, description string) error {
	const query = `UPDATE cpl SET deskripsi = $3 WHERE id_kurikulum = $1 AND id_cpl = $2`
	if _, err := r.db.ExecContext(ctx, query, curriculumID, code, description); err != nil {
		return fmt.Errorf("update cpl: %w", err)
	}
	return nil
}

// DeleteCascade removes the CPL with its outcome links and indicators
// inside one transaction.
func (r *CPLRepository) DeleteCascade(ctx context.Context, curriculumID, code string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete cpl: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	steps := []string{
		`DELETE FROM cpl_matkul WHERE id_kurikulum = $1 AND id_cpl = $2`,
		`DELETE FROM indikator_cpl WHERE id_kurikulum = $1 AND id_cpl = $2`,
		`DELETE FROM cpl WHERE id_kurikulum = $1 AND id_cpl = $2`,
	}
	for _, step := range steps {
		if _, err := tx.ExecContext(ctx, step, curriculumID, code); err != nil {
			return fmt.Errorf("delete cpl cascade: %w", err)
		}
	}

	return tx.Commit()
}

// ListCourses returns the distinct courses reachable through the join table.
func (r *CPLRepository) ListCourses(ctx context.Context, curriculumID, code string) ([]models.CourseSummary, error) {
	const query = `SELECT DISTINCT m.id_matkul, m.mata_kuliah, m.sks, m.semester FROM mata_kuliah m JOIN cpl_matkul cm ON cm.id_matkul = m.id_matkul WHERE cm.id_kurikulum = $1 AND cm.id_cpl = $2 ORDER BY m.id_matkul`
	var items []models.CourseSummary
	if err := r.db.SelectContext(ctx, &items, query, curriculumID, code); err != nil {
		return nil, fmt.Errorf("list cpl courses: %w", err)
	}
	return items, nil
}
