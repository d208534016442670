package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/curriculum-api/internal/models"
)

// IndicatorRepository handles persistence for outcome indicators.
type IndicatorRepository struct {
	db *sqlx.DB
}

// NewIndicatorRepository creates a new repository instance.
func NewIndicatorRepository(db *sqlx.DB) *IndicatorRepository {
	return &IndicatorRepository{db: db}
}

// Find returns the indicator identified by its full composite key.
func (r *IndicatorRepository) Find(ctx context.Context, curriculumID, cplCode, code string) (*models.Indicator, error) {
	const query = `SELECT id_kurikulum, id_cpl, id_indikator, deskripsi FROM indikator_cpl WHERE id_kurikulum = $1 AND id_cpl = $2 AND id_indikator = $3`
	var item models.Indicator
	if err := r.db.GetContext(ctx, &item, query, curriculumID, cplCode, code); err != nil {
		return nil, err
	}
	return &item, nil
}

// Exists checks whether the composite key is already taken.
func (r *IndicatorRepository) Exists(ctx context.Context, curriculumID, cplCode, code string) (bool, error) {
	const query = `SELECT 1 FROM indikator_cpl WHERE id_kurikulum = $1 AND id_cpl = $2 AND id_indikator = $3 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, curriculumID, cplCode, code); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check indicator: %w", err)
	}
	return true, nil
}

// Create persists a new indicator.
func (r *IndicatorRepository) Create(ctx context.Context, item *models.Indicator) error {
	const query = `INSERT INTO indikator_cpl (id_kurikulum, id_cpl, id_indikator, deskripsi) VALUES (:id_kurikulum, :id_cpl, :id_indikator, :deskripsi)`
	if _, err := r.db.NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("create indicator: %w", err)
	}
	return nil
}

// UpdateDescription changes the indicator description in place.
func (r *IndicatorRepository) UpdateDescription(ctx context.Context, curriculumID, cplCode, code, description string) error {
	const query = `UPDATE indikator_cpl SET deskripsi = $4 WHERE id_kurikulum = $1 AND id_cpl = $2 AND id_indikator = $3`
	if _, err := r.db.ExecContext(ctx, query, curriculumID, cplCode, code, description); err != nil {
		return fmt.Errorf("update indicator: %w", err)
	}
	return nil
}

// Move re-parents an indicator to another CPL. The composite primary key
// never mutates in place: the old row is deleted and the new one inserted
// inside a single transaction.
func (r *IndicatorRepository) Move(ctx context.Context, curriculumID, oldCPLCode, code string, replacement *models.Indicator) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin move indicator: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM indikator_cpl WHERE id_kurikulum = $1 AND id_cpl = $2 AND id_indikator = $3`, curriculumID, oldCPLCode, code); err != nil {
		return fmt.Errorf("move indicator delete: %w", err)
	}
	if _, err := tx.NamedExecContext(ctx, `INSERT INTO indikator_cpl (id_kurikulum, id_cpl, id_indikator, deskripsi) VALUES (:id_kurikulum, :id_cpl, :id_indikator, :deskripsi)`, replacement); err != nil {
		return fmt.Errorf("move indicator insert: %w", err)
	}

	return tx.Commit()
}

// Delete removes an indicator row.
func (r *IndicatorRepository) Delete(ctx context.Context, curriculumID, cplCode, code string) error {
	const query = `DELETE FROM indikator_cpl WHERE id_kurikulum = $1 AND id_cpl = $2 AND id_indikator = $3`
	if _, err := r.db.ExecContext(ctx, query, curriculumID, cplCode, code); err != nil {
		return fmt.Errorf("delete indicator: %w", err)
	}
	return nil
}

// ListByCPL returns all indicators under the given CPL.
func (r *IndicatorRepository) ListByCPL(ctx context.Context, curriculumID, cplCode string) ([]models.IndicatorSummary, error) {
	const query = `SELECT id_indikator, deskripsi FROM indikator_cpl WHERE id_kurikulum = $1 AND id_cpl = $2 ORDER BY id_indikator`
	var items []models.IndicatorSummary
	if err := r.db.SelectContext(ctx, &items, query, curriculumID, cplCode); err != nil {
		return nil, fmt.Errorf("list indicators: %w", err)
	}
	return items, nil
}
