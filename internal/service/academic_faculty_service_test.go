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

type mockAcademicFacultyRepo struct {
	faculties map[string]*models.AcademicFaculty
	exists    bool
	created   *models.AcademicFaculty
	updated   *models.AcademicFaculty
}

func (m *mockAcademicFacultyRepo) List(ctx context.Context, filter models.AcademicFacultyFilter) ([]models.AcademicFaculty, int, error) {
	out := make([]models.AcademicFaculty, 0, len(m.faculties))
	for _, f := range m.faculties {
		out = append(out, *f)
	}
	return out, len(out), nil
}

func (m *mockAcademicFacultyRepo) FindByID(ctx context.Context, id string) (*models.AcademicFaculty, error) {
	f, ok := m.faculties[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *f
	return &copied, nil
}

func (m *mockAcademicFacultyRepo) ExistsByTitle(ctx context.Context, title string, excludeID string) (bool, error) {
	return m.exists, nil
}

func (m *mockAcademicFacultyRepo) Create(ctx context.Context, faculty *models.AcademicFaculty) error {
	faculty.ID = "generated"
	m.created = faculty
	return nil
}

func (m *mockAcademicFacultyRepo) Update(ctx context.Context, faculty *models.AcademicFaculty) error {
	m.updated = faculty
	return nil
}

func (m *mockAcademicFacultyRepo) Delete(ctx context.Context, id string) (*models.AcademicFaculty, error) {
	f, ok := m.faculties[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return f, nil
}

func TestAcademicFacultyServiceCreate(t *testing.T) {
	repo := &mockAcademicFacultyRepo{faculties: map[string]*models.AcademicFaculty{}}
	svc := NewAcademicFacultyService(repo, nil, nil)

	faculty, err := svc.Create(context.Background(), models.TitleCreateRequest{Title: "Engineering"})
	require.NoError(t, err)
	assert.Equal(t, "generated", faculty.ID)
	assert.Equal(t, "Engineering", repo.created.Title)
}

func TestAcademicFacultyServiceCreateDuplicate(t *testing.T) {
	repo := &mockAcademicFacultyRepo{faculties: map[string]*models.AcademicFaculty{}, exists: true}
	svc := NewAcademicFacultyService(repo, nil, nil)

	_, err := svc.Create(context.Background(), models.TitleCreateRequest{Title: "Engineering"})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Nil(t, repo.created)
}

func TestAcademicFacultyServiceUpdateToTakenTitle(t *testing.T) {
	repo := &mockAcademicFacultyRepo{faculties: map[string]*models.AcademicFaculty{
		"fac-1": {ID: "fac-1", Title: "Engineering"},
	}, exists: true}
	svc := NewAcademicFacultyService(repo, nil, nil)

	title := "Science"
	_, err := svc.Update(context.Background(), "fac-1", models.TitleUpdateRequest{Title: &title})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Nil(t, repo.updated)
}
