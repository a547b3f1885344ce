package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univista/ums-api/internal/models"
	appErrors "github.com/univista/ums-api/pkg/errors"
	"github.com/univista/ums-api/pkg/export"
)

type mockStudentRepo struct {
	students map[string]*models.StudentDetail
	updated  *models.Student
	deleted  string
}

func (m *mockStudentRepo) List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, int, error) {
	if filter.Options.Page > 1 {
		return nil, len(m.students), nil
	}
	out := make([]models.StudentDetail, 0, len(m.students))
	for _, s := range m.students {
		out = append(out, *s)
	}
	return out, len(out), nil
}

func (m *mockStudentRepo) FindByBusinessID(ctx context.Context, studentID string) (*models.StudentDetail, error) {
	s, ok := m.students[studentID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *s
	return &copied, nil
}

func (m *mockStudentRepo) Update(ctx context.Context, student *models.Student) error {
	m.updated = student
	if existing, ok := m.students[student.StudentID]; ok {
		existing.Student = *student
	}
	return nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, studentID string) (*models.Student, error) {
	s, ok := m.students[studentID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	m.deleted = studentID
	delete(m.students, studentID)
	return &s.Student, nil
}

func seededStudent() *models.StudentDetail {
	title := "Autumn"
	year := 2025
	dept := "Computer Science"
	fac := "Engineering"
	return &models.StudentDetail{
		Student: models.Student{
			ID:        "student-uuid",
			StudentID: "250100001",
			Name:      models.PersonName{FirstName: "Ada", MiddleName: "K", LastName: "Lovelace"},
			Gender:    "female",
			Email:     "ada@example.com",
			ContactNo: "01700000000",
			Guardian: models.Guardian{
				FatherName: "Father",
				MotherName: "Mother",
				Address:    "Dhaka",
			},
			LocalGuardian: models.LocalGuardian{Name: "Uncle", Address: "Dhaka"},
		},
		SemesterTitle:           &title,
		SemesterYear:            &year,
		AcademicDepartmentTitle: &dept,
		AcademicFacultyTitle:    &fac,
	}
}

func newStudentFixture() (*StudentService, *mockStudentRepo) {
	repo := &mockStudentRepo{students: map[string]*models.StudentDetail{
		"250100001": seededStudent(),
	}}
	svc := NewStudentService(repo, export.NewCSVExporter(), export.NewPDFExporter(), nil, nil)
	return svc, repo
}

func TestStudentServiceUpdateMergesName(t *testing.T) {
	svc, repo := newStudentFixture()

	first := "Augusta"
	updated, err := svc.Update(context.Background(), "250100001", models.StudentUpdate{
		Name: &models.PersonNameUpdate{FirstName: &first},
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updated)

	// Siblings of the changed field keep their stored values.
	assert.Equal(t, "Augusta", updated.Name.FirstName)
	assert.Equal(t, "K", updated.Name.MiddleName)
	assert.Equal(t, "Lovelace", updated.Name.LastName)
	assert.Equal(t, "Father", updated.Guardian.FatherName)
}

func TestStudentServiceUpdateMergesGuardian(t *testing.T) {
	svc, _ := newStudentFixture()

	contact := "01800000000"
	updated, err := svc.Update(context.Background(), "250100001", models.StudentUpdate{
		Guardian: &models.GuardianUpdate{FatherContactNo: &contact},
	})
	require.NoError(t, err)
	assert.Equal(t, "01800000000", updated.Guardian.FatherContactNo)
	assert.Equal(t, "Father", updated.Guardian.FatherName)
	assert.Equal(t, "Mother", updated.Guardian.MotherName)
	assert.Equal(t, "Uncle", updated.LocalGuardian.Name)
}

func TestStudentServiceUpdateMissing(t *testing.T) {
	svc, repo := newStudentFixture()

	email := "new@example.com"
	_, err := svc.Update(context.Background(), "999999999", models.StudentUpdate{Email: &email})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Nil(t, repo.updated)
}

func TestStudentServiceDelete(t *testing.T) {
	svc, repo := newStudentFixture()

	student, err := svc.Delete(context.Background(), "250100001")
	require.NoError(t, err)
	assert.Equal(t, "250100001", student.StudentID)
	assert.Equal(t, "250100001", repo.deleted)
}

func TestStudentServiceExportCSV(t *testing.T) {
	svc, _ := newStudentFixture()

	payload, contentType, err := svc.ExportRoster(context.Background(), models.StudentFilter{}, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	out := string(payload)
	assert.True(t, strings.HasPrefix(out, "ID,Name,Email,Contact No,Semester,Department,Faculty"))
	assert.Contains(t, out, "250100001,Ada K Lovelace,ada@example.com,01700000000,Autumn 2025,Computer Science,Engineering")
}

func TestStudentServiceExportPDF(t *testing.T) {
	svc, _ := newStudentFixture()

	payload, contentType, err := svc.ExportRoster(context.Background(), models.StudentFilter{}, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}

func TestStudentServiceExportUnknownFormat(t *testing.T) {
	svc, _ := newStudentFixture()

	_, _, err := svc.ExportRoster(context.Background(), models.StudentFilter{}, "xlsx")
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestBuildRosterDatasetSkipsMissingOrgTitles(t *testing.T) {
	detail := seededStudent()
	detail.SemesterTitle = nil
	detail.SemesterYear = nil
	detail.AcademicDepartmentTitle = nil

	dataset := buildRosterDataset([]models.StudentDetail{*detail})
	require.Len(t, dataset.Rows, 1)
	assert.Equal(t, "", dataset.Rows[0]["Semester"])
	assert.Equal(t, "", dataset.Rows[0]["Department"])
	assert.Equal(t, "Engineering", dataset.Rows[0]["Faculty"])
}
