package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univista/ums-api/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func semesterRows() *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"id", "title", "year", "code", "start_month", "end_month", "created_at", "updated_at"}).
		AddRow("sem-1", "Autumn", 2025, "01", "January", "April", now, now).
		AddRow("sem-2", "Fall", 2025, "03", "September", "December", now, now)
}

func TestSemesterRepositoryList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAcademicSemesterRepository(db)

	mock.ExpectQuery("SELECT id, title, year, code, start_month, end_month, created_at, updated_at FROM academic_semesters ORDER BY").
		WillReturnRows(semesterRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM academic_semesters")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	semesters, total, err := repo.List(context.Background(), models.AcademicSemesterFilter{})
	require.NoError(t, err)
	assert.Len(t, semesters, 2)
	assert.Equal(t, 2, total)
	assert.Equal(t, "Autumn", semesters[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSemesterRepositoryListFiltered(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAcademicSemesterRepository(db)

	mock.ExpectQuery("FROM academic_semesters WHERE").
		WillReturnRows(semesterRows())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM academic_semesters WHERE")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	year := 2025
	_, _, err := repo.List(context.Background(), models.AcademicSemesterFilter{Year: &year})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSemesterRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAcademicSemesterRepository(db)

	mock.ExpectExec("INSERT INTO academic_semesters").
		WillReturnResult(sqlmock.NewResult(0, 1))

	semester := &models.AcademicSemester{Title: "Autumn", Year: 2025, Code: "01", StartMonth: "January", EndMonth: "April"}
	err := repo.Create(context.Background(), semester)
	require.NoError(t, err)
	assert.NotEmpty(t, semester.ID)
	assert.False(t, semester.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSemesterRepositoryExistsExcludesRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAcademicSemesterRepository(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("Autumn", 2025, "sem-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByTitleAndYear(context.Background(), "Autumn", 2025, "sem-1")
	require.NoError(t, err)
	assert.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSemesterRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAcademicSemesterRepository(db)

	now := time.Now().UTC()
	mock.ExpectQuery("DELETE FROM academic_semesters WHERE id = .* RETURNING").
		WithArgs("sem-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "year", "code", "start_month", "end_month", "created_at", "updated_at"}).
			AddRow("sem-1", "Autumn", 2025, "01", "January", "April", now, now))

	semester, err := repo.Delete(context.Background(), "sem-1")
	require.NoError(t, err)
	assert.Equal(t, "Autumn", semester.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSemesterRepositoryDeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAcademicSemesterRepository(db)

	mock.ExpectQuery("DELETE FROM academic_semesters WHERE id = .* RETURNING").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}
