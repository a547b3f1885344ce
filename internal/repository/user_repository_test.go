package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univista/ums-api/internal/models"
)

func provisionableFaculty() *models.Faculty {
	return &models.Faculty{
		Name:                 models.PersonName{FirstName: "Grace", LastName: "Hopper"},
		Gender:               "female",
		DateOfBirth:          "1980-12-09",
		Email:                "grace@example.com",
		ContactNo:            "01700000002",
		EmergencyContactNo:   "01700000003",
		PresentAddress:       "Dhaka",
		PermanentAddress:     "Dhaka",
		Designation:          "Lecturer",
		AcademicDepartmentID: "11111111-1111-1111-1111-111111111111",
		AcademicFacultyID:    "22222222-2222-2222-2222-222222222222",
	}
}

func TestUserRepositoryProvisionFaculty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO id_sequences").
		WithArgs("faculty").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(1))
	mock.ExpectExec("INSERT INTO faculties").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	faculty := provisionableFaculty()
	user := &models.User{Role: models.RoleFaculty, PasswordHash: "hash", NeedsPasswordChange: true}

	err := repo.ProvisionFaculty(context.Background(), faculty, user, "F-")
	require.NoError(t, err)
	assert.Equal(t, "F-00001", user.ID)
	assert.Equal(t, "F-00001", faculty.FacultyID)
	require.NotNil(t, user.FacultyID)
	assert.Equal(t, faculty.ID, *user.FacultyID)
	assert.Nil(t, user.StudentID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryProvisionFacultySequenceAdvances(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO id_sequences").
		WithArgs("faculty").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(42))
	mock.ExpectExec("INSERT INTO faculties").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user := &models.User{Role: models.RoleFaculty, PasswordHash: "hash"}
	err := repo.ProvisionFaculty(context.Background(), provisionableFaculty(), user, "F-")
	require.NoError(t, err)
	assert.Equal(t, "F-00042", user.ID)
}

func TestUserRepositoryProvisionRollsBackOnProfileInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO id_sequences").
		WithArgs("faculty").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(1))
	mock.ExpectExec("INSERT INTO faculties").
		WillReturnError(fmt.Errorf("duplicate key value violates unique constraint"))
	mock.ExpectRollback()

	user := &models.User{Role: models.RoleFaculty, PasswordHash: "hash"}
	err := repo.ProvisionFaculty(context.Background(), provisionableFaculty(), user, "F-")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryProvisionRollsBackOnUserInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO id_sequences").
		WithArgs("faculty").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(1))
	mock.ExpectExec("INSERT INTO faculties").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(fmt.Errorf("connection reset"))
	mock.ExpectRollback()

	user := &models.User{Role: models.RoleFaculty, PasswordHash: "hash"}
	err := repo.ProvisionFaculty(context.Background(), provisionableFaculty(), user, "F-")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	now := time.Now().UTC()
	profileID := "faculty-uuid"
	mock.ExpectQuery("FROM users WHERE id =").
		WithArgs("F-00001").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "role", "password_hash", "needs_password_change", "password_changed_at",
			"student_id", "faculty_id", "admin_id", "created_at", "updated_at",
		}).AddRow("F-00001", "faculty", "hash", true, nil, nil, profileID, nil, now, now))

	user, err := repo.FindByID(context.Background(), "F-00001")
	require.NoError(t, err)
	assert.Equal(t, models.RoleFaculty, user.Role)
	require.NotNil(t, user.FacultyID)
	assert.Equal(t, profileID, *user.FacultyID)
}

func TestUserRepositoryUpdatePassword(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("UPDATE users SET password_hash").
		WithArgs("new-hash", sqlmock.AnyArg(), "F-00001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePassword(context.Background(), "F-00001", "new-hash")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
