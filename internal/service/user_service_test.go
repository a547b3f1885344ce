package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/univista/ums-api/internal/models"
	appErrors "github.com/univista/ums-api/pkg/errors"
)

type mockUserRepo struct {
	users      map[string]*models.User
	lastPrefix string
	lastUser   *models.User
	seq        int
}

func (m *mockUserRepo) List(ctx context.Context, filter models.UserFilter) ([]models.User, int, error) {
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, len(out), nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (m *mockUserRepo) provision(user *models.User, prefix string) string {
	m.seq++
	id := fmt.Sprintf("%s%05d", prefix, m.seq)
	user.ID = id
	m.lastPrefix = prefix
	m.lastUser = user
	return id
}

func (m *mockUserRepo) ProvisionStudent(ctx context.Context, student *models.Student, user *models.User, prefix string) error {
	student.ID = "student-uuid"
	student.StudentID = m.provision(user, prefix)
	user.StudentID = &student.ID
	return nil
}

func (m *mockUserRepo) ProvisionFaculty(ctx context.Context, faculty *models.Faculty, user *models.User, prefix string) error {
	faculty.ID = "faculty-uuid"
	faculty.FacultyID = m.provision(user, prefix)
	user.FacultyID = &faculty.ID
	return nil
}

func (m *mockUserRepo) ProvisionAdmin(ctx context.Context, admin *models.Admin, user *models.User, prefix string) error {
	admin.ID = "admin-uuid"
	admin.AdminID = m.provision(user, prefix)
	user.AdminID = &admin.ID
	return nil
}

type mockSemesterReader struct {
	semester *models.AcademicSemester
}

func (m *mockSemesterReader) FindByID(ctx context.Context, id string) (*models.AcademicSemester, error) {
	if m.semester == nil || m.semester.ID != id {
		return nil, sql.ErrNoRows
	}
	return m.semester, nil
}

type mockStudentReader struct{}

func (m *mockStudentReader) FindByID(ctx context.Context, id string) (*models.StudentDetail, error) {
	return &models.StudentDetail{Student: models.Student{ID: id, StudentID: "stub"}}, nil
}

type mockFacultyReader struct{}

func (m *mockFacultyReader) FindByID(ctx context.Context, id string) (*models.FacultyDetail, error) {
	return &models.FacultyDetail{Faculty: models.Faculty{ID: id, FacultyID: "stub"}}, nil
}

type mockAdminReader struct{}

func (m *mockAdminReader) FindByID(ctx context.Context, id string) (*models.AdminDetail, error) {
	return &models.AdminDetail{Admin: models.Admin{ID: id, AdminID: "stub"}}, nil
}

const testSemesterID = "44444444-4444-4444-4444-444444444444"

func newUserFixture() (*UserService, *mockUserRepo) {
	repo := &mockUserRepo{users: map[string]*models.User{}}
	semesters := &mockSemesterReader{semester: &models.AcademicSemester{
		ID: testSemesterID, Title: models.SemesterTitleAutumn, Year: 2025, Code: "01",
	}}
	svc := NewUserService(repo, semesters, &mockStudentReader{}, &mockFacultyReader{}, &mockAdminReader{}, nil, nil, UserConfig{
		DefaultStudentPassword: "student-default",
		DefaultFacultyPassword: "faculty-default",
		DefaultAdminPassword:   "admin-default",
		BcryptCost:             bcrypt.MinCost,
	})
	return svc, repo
}

func validStudentCreate() models.StudentCreate {
	return models.StudentCreate{
		Name:                 models.PersonName{FirstName: "Ada", LastName: "Lovelace"},
		Gender:               "female",
		DateOfBirth:          "2000-01-15",
		Email:                "ada@example.com",
		ContactNo:            "01700000000",
		EmergencyContactNo:   "01700000001",
		PresentAddress:       "Dhaka",
		PermanentAddress:     "Dhaka",
		Guardian:             models.Guardian{FatherName: "F", MotherName: "M", Address: "Dhaka"},
		LocalGuardian:        models.LocalGuardian{Name: "L", Address: "Dhaka"},
		AcademicSemesterID:   testSemesterID,
		AcademicDepartmentID: "11111111-1111-1111-1111-111111111111",
		AcademicFacultyID:    "22222222-2222-2222-2222-222222222222",
	}
}

func TestUserServiceCreateStudentPrefix(t *testing.T) {
	svc, repo := newUserFixture()

	detail, err := svc.CreateStudent(context.Background(), models.CreateStudentRequest{Student: validStudentCreate()})
	require.NoError(t, err)

	// 2025 Autumn -> year suffix 25 plus code 01.
	assert.Equal(t, "2501", repo.lastPrefix)
	assert.Equal(t, "250100001", detail.User.ID)
	assert.Equal(t, models.RoleStudent, detail.User.Role)
	assert.True(t, detail.User.NeedsPasswordChange)
	require.NotNil(t, detail.Student)
}

func TestUserServiceCreateStudentDefaultPassword(t *testing.T) {
	svc, repo := newUserFixture()

	_, err := svc.CreateStudent(context.Background(), models.CreateStudentRequest{Student: validStudentCreate()})
	require.NoError(t, err)
	require.NotNil(t, repo.lastUser)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.lastUser.PasswordHash), []byte("student-default")))
}

func TestUserServiceCreateStudentExplicitPassword(t *testing.T) {
	svc, repo := newUserFixture()

	_, err := svc.CreateStudent(context.Background(), models.CreateStudentRequest{
		Password: "chosen-by-user",
		Student:  validStudentCreate(),
	})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.lastUser.PasswordHash), []byte("chosen-by-user")))
}

func TestUserServiceCreateStudentUnknownSemester(t *testing.T) {
	svc, repo := newUserFixture()

	create := validStudentCreate()
	create.AcademicSemesterID = "55555555-5555-5555-5555-555555555555"

	_, err := svc.CreateStudent(context.Background(), models.CreateStudentRequest{Student: create})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Nil(t, repo.lastUser)
}

func TestUserServiceCreateFaculty(t *testing.T) {
	svc, repo := newUserFixture()

	detail, err := svc.CreateFaculty(context.Background(), models.CreateFacultyRequest{Faculty: models.FacultyCreate{
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
	}})
	require.NoError(t, err)
	assert.Equal(t, "F-", repo.lastPrefix)
	assert.Equal(t, "F-00001", detail.User.ID)
	assert.Equal(t, models.RoleFaculty, detail.User.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.lastUser.PasswordHash), []byte("faculty-default")))
}

func TestUserServiceCreateAdmin(t *testing.T) {
	svc, repo := newUserFixture()

	detail, err := svc.CreateAdmin(context.Background(), models.CreateAdminRequest{Admin: models.AdminCreate{
		Name:                   models.PersonName{FirstName: "Alan", LastName: "Turing"},
		Gender:                 "male",
		DateOfBirth:            "1975-06-23",
		Email:                  "alan@example.com",
		ContactNo:              "01700000004",
		EmergencyContactNo:     "01700000005",
		PresentAddress:         "Dhaka",
		PermanentAddress:       "Dhaka",
		Designation:            "Registrar",
		ManagementDepartmentID: "33333333-3333-3333-3333-333333333333",
	}})
	require.NoError(t, err)
	assert.Equal(t, "A-", repo.lastPrefix)
	assert.Equal(t, "A-00001", detail.User.ID)
	assert.Equal(t, models.RoleAdmin, detail.User.Role)
}

func TestUserServiceGetExpandsProfile(t *testing.T) {
	svc, repo := newUserFixture()

	profileID := "student-uuid"
	repo.users["250100001"] = &models.User{ID: "250100001", Role: models.RoleStudent, StudentID: &profileID}

	detail, err := svc.Get(context.Background(), "250100001")
	require.NoError(t, err)
	require.NotNil(t, detail.Student)
	assert.Equal(t, profileID, detail.Student.ID)
	assert.Nil(t, detail.Faculty)
	assert.Nil(t, detail.Admin)
}
