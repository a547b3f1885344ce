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

type mockSemesterRepo struct {
	semesters map[string]*models.AcademicSemester
	exists    bool
	created   *models.AcademicSemester
	updated   *models.AcademicSemester
	deleted   string
	listCalls int
}

func (m *mockSemesterRepo) List(ctx context.Context, filter models.AcademicSemesterFilter) ([]models.AcademicSemester, int, error) {
	m.listCalls++
	out := make([]models.AcademicSemester, 0, len(m.semesters))
	for _, s := range m.semesters {
		out = append(out, *s)
	}
	return out, len(out), nil
}

func (m *mockSemesterRepo) FindByID(ctx context.Context, id string) (*models.AcademicSemester, error) {
	s, ok := m.semesters[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *s
	return &copied, nil
}

func (m *mockSemesterRepo) ExistsByTitleAndYear(ctx context.Context, title string, year int, excludeID string) (bool, error) {
	return m.exists, nil
}

func (m *mockSemesterRepo) Create(ctx context.Context, semester *models.AcademicSemester) error {
	semester.ID = "generated"
	m.created = semester
	return nil
}

func (m *mockSemesterRepo) Update(ctx context.Context, semester *models.AcademicSemester) error {
	m.updated = semester
	return nil
}

func (m *mockSemesterRepo) Delete(ctx context.Context, id string) (*models.AcademicSemester, error) {
	s, ok := m.semesters[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	m.deleted = id
	return s, nil
}

func TestSemesterServiceCreate(t *testing.T) {
	repo := &mockSemesterRepo{semesters: map[string]*models.AcademicSemester{}}
	svc := NewAcademicSemesterService(repo, nil, nil, nil)

	semester, err := svc.Create(context.Background(), models.AcademicSemesterCreateRequest{
		Title:      models.SemesterTitleAutumn,
		Year:       2025,
		Code:       "01",
		StartMonth: "January",
		EndMonth:   "April",
	})
	require.NoError(t, err)
	assert.Equal(t, "generated", semester.ID)
	assert.Equal(t, "01", repo.created.Code)
}

func TestSemesterServiceCreateMismatchedCode(t *testing.T) {
	repo := &mockSemesterRepo{semesters: map[string]*models.AcademicSemester{}}
	svc := NewAcademicSemesterService(repo, nil, nil, nil)

	_, err := svc.Create(context.Background(), models.AcademicSemesterCreateRequest{
		Title:      models.SemesterTitleAutumn,
		Year:       2025,
		Code:       "02",
		StartMonth: "January",
		EndMonth:   "April",
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Nil(t, repo.created)
}

func TestSemesterServiceCreateDuplicate(t *testing.T) {
	repo := &mockSemesterRepo{semesters: map[string]*models.AcademicSemester{}, exists: true}
	svc := NewAcademicSemesterService(repo, nil, nil, nil)

	_, err := svc.Create(context.Background(), models.AcademicSemesterCreateRequest{
		Title:      models.SemesterTitleFall,
		Year:       2025,
		Code:       "03",
		StartMonth: "September",
		EndMonth:   "December",
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.Status)
}

func TestSemesterServiceCreateInvalidMonth(t *testing.T) {
	repo := &mockSemesterRepo{semesters: map[string]*models.AcademicSemester{}}
	svc := NewAcademicSemesterService(repo, nil, nil, nil)

	_, err := svc.Create(context.Background(), models.AcademicSemesterCreateRequest{
		Title:      models.SemesterTitleSummer,
		Year:       2025,
		Code:       "02",
		StartMonth: "Janry",
		EndMonth:   "April",
	})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestSemesterServiceUpdateTitleWithoutCode(t *testing.T) {
	title := models.SemesterTitleSummer
	repo := &mockSemesterRepo{semesters: map[string]*models.AcademicSemester{
		"sem-1": {ID: "sem-1", Title: models.SemesterTitleAutumn, Year: 2025, Code: "01", StartMonth: "January", EndMonth: "April"},
	}}
	svc := NewAcademicSemesterService(repo, nil, nil, nil)

	_, err := svc.Update(context.Background(), "sem-1", models.AcademicSemesterUpdateRequest{Title: &title})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Either both title and code should be provided or neither", appErr.Message)
	assert.Nil(t, repo.updated)
}

func TestSemesterServiceUpdatePartial(t *testing.T) {
	year := 2026
	repo := &mockSemesterRepo{semesters: map[string]*models.AcademicSemester{
		"sem-1": {ID: "sem-1", Title: models.SemesterTitleAutumn, Year: 2025, Code: "01", StartMonth: "January", EndMonth: "April"},
	}}
	svc := NewAcademicSemesterService(repo, nil, nil, nil)

	semester, err := svc.Update(context.Background(), "sem-1", models.AcademicSemesterUpdateRequest{Year: &year})
	require.NoError(t, err)
	assert.Equal(t, 2026, semester.Year)
	assert.Equal(t, models.SemesterTitleAutumn, semester.Title)
	require.NotNil(t, repo.updated)
}

func TestSemesterServiceDeleteMissing(t *testing.T) {
	repo := &mockSemesterRepo{semesters: map[string]*models.AcademicSemester{}}
	svc := NewAcademicSemesterService(repo, nil, nil, nil)

	_, err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}
