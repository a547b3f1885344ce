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

type mockFacultyRepo struct {
	faculties map[string]*models.FacultyDetail
	updated   *models.Faculty
	deleted   string
}

func (m *mockFacultyRepo) List(ctx context.Context, filter models.FacultyFilter) ([]models.FacultyDetail, int, error) {
	out := make([]models.FacultyDetail, 0, len(m.faculties))
	for _, f := range m.faculties {
		out = append(out, *f)
	}
	return out, len(out), nil
}

func (m *mockFacultyRepo) FindByBusinessID(ctx context.Context, facultyID string) (*models.FacultyDetail, error) {
	f, ok := m.faculties[facultyID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *f
	return &copied, nil
}

func (m *mockFacultyRepo) Update(ctx context.Context, faculty *models.Faculty) error {
	m.updated = faculty
	if existing, ok := m.faculties[faculty.FacultyID]; ok {
		existing.Faculty = *faculty
	}
	return nil
}

func (m *mockFacultyRepo) Delete(ctx context.Context, facultyID string) (*models.Faculty, error) {
	f, ok := m.faculties[facultyID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	m.deleted = facultyID
	delete(m.faculties, facultyID)
	return &f.Faculty, nil
}

func seededFaculty() *models.FacultyDetail {
	return &models.FacultyDetail{
		Faculty: models.Faculty{
			ID:          "faculty-uuid",
			FacultyID:   "F-00001",
			Name:        models.PersonName{FirstName: "Grace", MiddleName: "B", LastName: "Hopper"},
			Gender:      "female",
			Email:       "grace@example.com",
			ContactNo:   "01700000002",
			Designation: "Lecturer",
		},
	}
}

func newFacultyFixture() (*FacultyService, *mockFacultyRepo) {
	repo := &mockFacultyRepo{faculties: map[string]*models.FacultyDetail{
		"F-00001": seededFaculty(),
	}}
	return NewFacultyService(repo, nil, nil), repo
}

func TestFacultyServiceUpdateMergesName(t *testing.T) {
	svc, repo := newFacultyFixture()

	last := "Murray"
	updated, err := svc.Update(context.Background(), "F-00001", models.FacultyUpdate{
		Name: &models.PersonNameUpdate{LastName: &last},
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updated)

	// Siblings of the changed field keep their stored values.
	assert.Equal(t, "Grace", updated.Name.FirstName)
	assert.Equal(t, "B", updated.Name.MiddleName)
	assert.Equal(t, "Murray", updated.Name.LastName)
	assert.Equal(t, "Lecturer", updated.Designation)
}

func TestFacultyServiceUpdateScalarLeavesName(t *testing.T) {
	svc, _ := newFacultyFixture()

	designation := "Professor"
	updated, err := svc.Update(context.Background(), "F-00001", models.FacultyUpdate{Designation: &designation})
	require.NoError(t, err)
	assert.Equal(t, "Professor", updated.Designation)
	assert.Equal(t, "Grace", updated.Name.FirstName)
	assert.Equal(t, "Hopper", updated.Name.LastName)
}

func TestFacultyServiceUpdateMissing(t *testing.T) {
	svc, repo := newFacultyFixture()

	email := "new@example.com"
	_, err := svc.Update(context.Background(), "F-99999", models.FacultyUpdate{Email: &email})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Nil(t, repo.updated)
}

func TestFacultyServiceDelete(t *testing.T) {
	svc, repo := newFacultyFixture()

	faculty, err := svc.Delete(context.Background(), "F-00001")
	require.NoError(t, err)
	assert.Equal(t, "F-00001", faculty.FacultyID)
	assert.Equal(t, "F-00001", repo.deleted)
}
