package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univista/ums-api/internal/models"
	appErrors "github.com/univista/ums-api/pkg/errors"
)

type mockAcademicDepartmentRepo struct {
	departments map[string]*models.AcademicDepartmentDetail
	exists      bool
	created     *models.AcademicDepartment
	updated     *models.AcademicDepartment
}

func (m *mockAcademicDepartmentRepo) List(ctx context.Context, filter models.AcademicDepartmentFilter) ([]models.AcademicDepartmentDetail, int, error) {
	out := make([]models.AcademicDepartmentDetail, 0, len(m.departments))
	for _, d := range m.departments {
		out = append(out, *d)
	}
	return out, len(out), nil
}

func (m *mockAcademicDepartmentRepo) FindByID(ctx context.Context, id string) (*models.AcademicDepartmentDetail, error) {
	d, ok := m.departments[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *d
	return &copied, nil
}

func (m *mockAcademicDepartmentRepo) ExistsByTitle(ctx context.Context, title string, excludeID string) (bool, error) {
	return m.exists, nil
}

func (m *mockAcademicDepartmentRepo) Create(ctx context.Context, department *models.AcademicDepartment) error {
	department.ID = "generated"
	m.created = department
	return nil
}

func (m *mockAcademicDepartmentRepo) Update(ctx context.Context, department *models.AcademicDepartment) error {
	m.updated = department
	return nil
}

func (m *mockAcademicDepartmentRepo) Delete(ctx context.Context, id string) (*models.AcademicDepartment, error) {
	d, ok := m.departments[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &d.AcademicDepartment, nil
}

func TestAcademicDepartmentServiceCreate(t *testing.T) {
	repo := &mockAcademicDepartmentRepo{departments: map[string]*models.AcademicDepartmentDetail{}}
	svc := NewAcademicDepartmentService(repo, nil, nil)

	department, err := svc.Create(context.Background(), models.AcademicDepartmentCreateRequest{
		Title:             "Computer Science",
		AcademicFacultyID: "22222222-2222-2222-2222-222222222222",
	})
	require.NoError(t, err)
	assert.Equal(t, "generated", department.ID)
	assert.Equal(t, "Computer Science", repo.created.Title)
}

func TestAcademicDepartmentServiceCreateDuplicate(t *testing.T) {
	repo := &mockAcademicDepartmentRepo{departments: map[string]*models.AcademicDepartmentDetail{}, exists: true}
	svc := NewAcademicDepartmentService(repo, nil, nil)

	_, err := svc.Create(context.Background(), models.AcademicDepartmentCreateRequest{
		Title:             "Computer Science",
		AcademicFacultyID: "22222222-2222-2222-2222-222222222222",
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Nil(t, repo.created)
}

func TestAcademicDepartmentServiceUpdateToTakenTitle(t *testing.T) {
	repo := &mockAcademicDepartmentRepo{departments: map[string]*models.AcademicDepartmentDetail{
		"dep-1": {AcademicDepartment: models.AcademicDepartment{ID: "dep-1", Title: "Computer Science"}},
	}, exists: true}
	svc := NewAcademicDepartmentService(repo, nil, nil)

	title := "Mathematics"
	_, err := svc.Update(context.Background(), "dep-1", models.AcademicDepartmentUpdateRequest{Title: &title})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Nil(t, repo.updated)
}
