package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/curriculum-api/internal/models"
)

// CourseRepository handles persistence for courses and their outcome links.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository creates a new repository instance.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns all courses, unfiltered.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	const query = `SELECT id_matkul, mata_kuliah, sks, semester, created_at, updated_at FROM mata_kuliah ORDER BY id_matkul`
	var items []models.Course
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return items, nil
}

// FindByCode returns a course by its code.
func (r *CourseRepository) FindByCode(ctx context.Context, code string) (*models.Course, error) {
	const query = `SELECT id_matkul, mata_kuliah, sks, semester, created_at, updated_at FROM mata_kuliah WHERE id_matkul = $1`
	var item models.Course
	if err := r.db.GetContext(ctx, &item, query, code); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts the course together with its outcome links in one
// transaction. Link inserts are idempotent: duplicate triples are skipped.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course, links []models.CourseOutcome) error {
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create course: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const insertCourse = `INSERT INTO mata_kuliah (id_matkul, mata_kuliah, sks, semester, created_at, updated_at) VALUES (:id_matkul, :mata_kuliah, :sks, :semester, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, insertCourse, course); err != nil {
		return fmt.Errorf("create course: %w", err)
	}

	const insertLink = `INSERT INTO cpl_matkul (id_kurikulum, id_cpl, id_matkul) VALUES (:id_kurikulum, :id_cpl, :id_matkul) ON CONFLICT DO NOTHING`
	for i := range links {
		if _, err := tx.NamedExecContext(ctx, insertLink, &links[i]); err != nil {
			return fmt.Errorf("create course link: %w", err)
		}
	}

	return tx.Commit()
}

// Update modifies course fields and, when replaceLinks is set, swaps the
// full outcome-link set inside the same transaction. A failed field update
// therefore never leaves a half-applied link set behind; an empty set with
// replaceLinks unlinks the course from every CPL.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course, links []models.CourseOutcome, replaceLinks bool) error {
	course.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update course: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const updateCourse = `UPDATE mata_kuliah SET mata_kuliah = :mata_kuliah, sks = :sks, semester = :semester, updated_at = :updated_at WHERE id_matkul = :id_matkul`
	if _, err := tx.NamedExecContext(ctx, updateCourse, course); err != nil {
		return fmt.Errorf("update course: %w", err)
	}

	if replaceLinks {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cpl_matkul WHERE id_matkul = $1`, course.Code); err != nil {
			return fmt.Errorf("clear course links: %w", err)
		}
		const insertLink = `INSERT INTO cpl_matkul (id_kurikulum, id_cpl, id_matkul) VALUES (:id_kurikulum, :id_cpl, :id_matkul) ON CONFLICT DO NOTHING`
		for i := range links {
			if _, err := tx.NamedExecContext(ctx, insertLink, &links[i]); err != nil {
				return fmt.Errorf("insert course link: %w", err)
			}
		}
	}

	return tx.Commit()
}

// ListOutcomes returns the outcome links of a course joined with the CPL
// description.
func (r *CourseRepository) ListOutcomes(ctx context.Context, courseCode string) ([]models.CourseCPLSummary, error) {
	const query = `SELECT c.id_kurikulum, c.id_cpl, c.deskripsi FROM cpl c JOIN cpl_matkul cm ON cm.id_kurikulum = c.id_kurikulum AND cm.id_cpl = c.id_cpl WHERE cm.id_matkul = $1 ORDER BY c.id_kurikulum, c.id_cpl`
	var items []models.CourseCPLSummary
	if err := r.db.SelectContext(ctx, &items, query, courseCode); err != nil {
		return nil, fmt.Errorf("list course outcomes: %w", err)
	}
	return items, nil
}

// DeleteCascade removes the course after clearing its join rows.
func (r *CourseRepository) DeleteCascade(ctx context.Context, code string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete course: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM cpl_matkul WHERE id_matkul = $1`, code); err != nil {
		return fmt.Errorf("delete course links: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM mata_kuliah WHERE id_matkul = $1`, code); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}

	return tx.Commit()
}
