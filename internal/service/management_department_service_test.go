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

type mockManagementDepartmentRepo struct {
	departments map[string]*models.ManagementDepartment
	exists      bool
	created     *models.ManagementDepartment
	updated     *models.ManagementDepartment
}

func (m *mockManagementDepartmentRepo) List(ctx context.Context, filter models.ManagementDepartmentFilter) ([]models.ManagementDepartment, int, error) {
	out := make([]models.ManagementDepartment, 0, len(m.departments))
	for _, d := range m.departments {
		out = append(out, *d)
	}
	return out, len(out), nil
}

func (m *mockManagementDepartmentRepo) FindByID(ctx context.Context, id string) (*models.ManagementDepartment, error) {
	d, ok := m.departments[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *d
	return &copied, nil
}

func (m *mockManagementDepartmentRepo) ExistsByTitle(ctx context.Context, title string, excludeID string) (bool, error) {
	return m.exists, nil
}

func (m *mockManagementDepartmentRepo) Create(ctx context.Context, department *models.ManagementDepartment) error {
	department.ID = "generated"
	m.created = department
	return nil
}

func (m *mockManagementDepartmentRepo) Update(ctx context.Context, department *models.ManagementDepartment) error {
	m.updated = department
	return nil
}

func (m *mockManagementDepartmentRepo) Delete(ctx context.Context, id string) (*models.ManagementDepartment, error) {
	d, ok := m.departments[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return d, nil
}

func TestManagementDepartmentServiceCreate(t *testing.T) {
	repo := &mockManagementDepartmentRepo{departments: map[string]*models.ManagementDepartment{}}
	svc := NewManagementDepartmentService(repo, nil, nil)

	department, err := svc.Create(context.Background(), models.TitleCreateRequest{Title: "Registrar Office"})
	require.NoError(t, err)
	assert.Equal(t, "generated", department.ID)
	assert.Equal(t, "Registrar Office", repo.created.Title)
}

func TestManagementDepartmentServiceCreateDuplicate(t *testing.T) {
	repo := &mockManagementDepartmentRepo{departments: map[string]*models.ManagementDepartment{}, exists: true}
	svc := NewManagementDepartmentService(repo, nil, nil)

	_, err := svc.Create(context.Background(), models.TitleCreateRequest{Title: "Registrar Office"})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Nil(t, repo.created)
}

func TestManagementDepartmentServiceUpdateToTakenTitle(t *testing.T) {
	repo := &mockManagementDepartmentRepo{departments: map[string]*models.ManagementDepartment{
		"mdep-1": {ID: "mdep-1", Title: "Registrar Office"},
	}, exists: true}
	svc := NewManagementDepartmentService(repo, nil, nil)

	title := "Accounts"
	_, err := svc.Update(context.Background(), "mdep-1", models.TitleUpdateRequest{Title: &title})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Nil(t, repo.updated)
}
