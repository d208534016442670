package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/curriculum-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestCurriculumRepositoryCreateAndFind(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCurriculumRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kurikulum")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	item := &models.Curriculum{Name: "Kurikulum 2024", Revision: "Rev. 1", Status: models.CurriculumActive}
	require.NoError(t, repo.Create(context.Background(), item))
	require.NotEmpty(t, item.ID, "create must generate the uuid")

	rows := sqlmock.NewRows([]string{"id_kurikulum", "nama_kurikulum", "revisi", "status_kurikulum", "created_at", "updated_at"}).
		AddRow(item.ID, item.Name, item.Revision, string(item.Status), time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id_kurikulum, nama_kurikulum, revisi, status_kurikulum")).
		WithArgs(item.ID).
		WillReturnRows(rows)

	found, err := repo.FindByID(context.Background(), item.ID)
	require.NoError(t, err)
	require.Equal(t, item.Name, found.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCurriculumRepositoryExistsByName(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCurriculumRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM kurikulum WHERE nama_kurikulum = $1")).
		WithArgs("Kurikulum 2024").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	exists, err := repo.ExistsByName(context.Background(), "Kurikulum 2024", "")
	require.NoError(t, err)
	require.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM kurikulum WHERE nama_kurikulum = $1")).
		WithArgs("Kurikulum Lain").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
	exists, err = repo.ExistsByName(context.Background(), "Kurikulum Lain", "")
	require.NoError(t, err)
	require.False(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM kurikulum WHERE nama_kurikulum = $1 AND id_kurikulum <> $2")).
		WithArgs("Kurikulum 2024", "some-id").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
	exists, err = repo.ExistsByName(context.Background(), "Kurikulum 2024", "some-id")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCurriculumRepositoryDeleteCascadeOrder(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCurriculumRepository(db)
	id := "11111111-2222-3333-4444-555555555555"

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cpl_matkul WHERE id_kurikulum = $1")).
		WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM indikator_cpl WHERE id_kurikulum = $1")).
		WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cpl WHERE id_kurikulum = $1")).
		WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kurikulum WHERE id_kurikulum = $1")).
		WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteCascade(context.Background(), id))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCurriculumRepositoryListCPL(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCurriculumRepository(db)
	rows := sqlmock.NewRows([]string{"id_cpl", "deskripsi"}).
		AddRow("CPL-01", "Berpikir logis").
		AddRow("CPL-02", "Mandiri")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id_cpl, deskripsi FROM cpl WHERE id_kurikulum = $1")).
		WithArgs("some-id").
		WillReturnRows(rows)

	items, err := repo.ListCPL(context.Background(), "some-id")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "CPL-01", items[0].Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
