package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/curriculum-api/internal/models"
)

func TestCourseRepositoryCreateWithLinks(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO mata_kuliah")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cpl_matkul")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cpl_matkul")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	course := &models.Course{Code: "MK-099", Name: "Pemrograman Lanjut", Credits: 3, Semester: 2}
	links := []models.CourseOutcome{
		{CurriculumID: "kur-1", CPLCode: "CPL-01", CourseCode: "MK-099"},
		{CurriculumID: "kur-1", CPLCode: "CPL-02", CourseCode: "MK-099"},
	}
	require.NoError(t, repo.Create(context.Background(), course, links))
	require.False(t, course.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryUpdateFieldsOnly(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE mata_kuliah SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	course := &models.Course{Code: "MK-099", Name: "Pemrograman Lanjut", Credits: 4, Semester: 2}
	require.NoError(t, repo.Update(context.Background(), course, nil, false))
	require.False(t, course.UpdatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryUpdateSwapsLinksInSameTransaction(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE mata_kuliah SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cpl_matkul WHERE id_matkul = $1")).
		WithArgs("MK-099").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cpl_matkul")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	course := &models.Course{Code: "MK-099", Name: "Pemrograman Lanjut", Credits: 3, Semester: 2}
	links := []models.CourseOutcome{{CurriculumID: "kur-1", CPLCode: "CPL-02", CourseCode: "MK-099"}}
	require.NoError(t, repo.Update(context.Background(), course, links, true))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryUpdateEmptyLinkSetOnlyDeletes(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE mata_kuliah SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cpl_matkul WHERE id_matkul = $1")).
		WithArgs("MK-099").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	course := &models.Course{Code: "MK-099", Name: "Pemrograman Lanjut", Credits: 3, Semester: 2}
	require.NoError(t, repo.Update(context.Background(), course, nil, true))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryUpdateFailureRollsBackLinkSwap(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE mata_kuliah SET")).
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	course := &models.Course{Code: "MK-099", Name: "Pemrograman Lanjut", Credits: 3, Semester: 2}
	links := []models.CourseOutcome{{CurriculumID: "kur-1", CPLCode: "CPL-02", CourseCode: "MK-099"}}
	require.Error(t, repo.Update(context.Background(), course, links, true))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryDeleteCascade(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cpl_matkul WHERE id_matkul = $1")).
		WithArgs("MK-099").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM mata_kuliah WHERE id_matkul = $1")).
		WithArgs("MK-099").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteCascade(context.Background(), "MK-099"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryListOutcomes(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)
	rows := sqlmock.NewRows([]string{"id_kurikulum", "id_cpl", "deskripsi"}).
		AddRow("kur-1", "CPL-01", "Berpikir logis")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT c.id_kurikulum, c.id_cpl, c.deskripsi FROM cpl c JOIN cpl_matkul cm")).
		WithArgs("MK-001").
		WillReturnRows(rows)

	items, err := repo.ListOutcomes(context.Background(), "MK-001")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Berpikir logis", items[0].Description)
	require.NoError(t, mock.ExpectationsWereMet())
}
