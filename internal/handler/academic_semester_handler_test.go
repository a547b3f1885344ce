package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univista/ums-api/internal/models"
	"github.com/univista/ums-api/internal/service"
	"github.com/univista/ums-api/pkg/response"
)

type stubSemesterRepo struct {
	semesters []models.AcademicSemester
	exists    bool
	created   *models.AcademicSemester
}

func (s *stubSemesterRepo) List(ctx context.Context, filter models.AcademicSemesterFilter) ([]models.AcademicSemester, int, error) {
	return s.semesters, len(s.semesters), nil
}

func (s *stubSemesterRepo) FindByID(ctx context.Context, id string) (*models.AcademicSemester, error) {
	for i := range s.semesters {
		if s.semesters[i].ID == id {
			return &s.semesters[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *stubSemesterRepo) ExistsByTitleAndYear(ctx context.Context, title string, year int, excludeID string) (bool, error) {
	return s.exists, nil
}

func (s *stubSemesterRepo) Create(ctx context.Context, semester *models.AcademicSemester) error {
	semester.ID = "generated"
	s.created = semester
	return nil
}

func (s *stubSemesterRepo) Update(ctx context.Context, semester *models.AcademicSemester) error {
	return nil
}

func (s *stubSemesterRepo) Delete(ctx context.Context, id string) (*models.AcademicSemester, error) {
	return nil, sql.ErrNoRows
}

func newSemesterRouter(repo *stubSemesterRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAcademicSemesterHandler(service.NewAcademicSemesterService(repo, nil, nil, nil))
	r := gin.New()
	r.NoRoute(response.NotFoundRoute)
	r.GET("/academic-semesters", h.List)
	r.GET("/academic-semesters/:id", h.Get)
	r.POST("/academic-semesters", h.Create)
	return r
}

func TestSemesterHandlerList(t *testing.T) {
	repo := &stubSemesterRepo{semesters: []models.AcademicSemester{
		{ID: "sem-1", Title: "Autumn", Year: 2025, Code: "01"},
		{ID: "sem-2", Title: "Fall", Year: 2025, Code: "03"},
	}}
	r := newSemesterRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/academic-semesters?page=1&limit=10", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "Academic semesters retrieved successfully!", envelope.Message)
	require.NotNil(t, envelope.Meta)
	assert.Equal(t, 2, envelope.Meta.Total)
	assert.Equal(t, 1, envelope.Meta.Page)
	assert.Equal(t, 10, envelope.Meta.Limit)
}

func TestSemesterHandlerCreate(t *testing.T) {
	repo := &stubSemesterRepo{}
	r := newSemesterRouter(repo)

	body := `{"title":"Autumn","year":2025,"code":"01","startMonth":"January","endMonth":"April"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/academic-semesters", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Autumn", repo.created.Title)
}

func TestSemesterHandlerCreateMismatchedCode(t *testing.T) {
	repo := &stubSemesterRepo{}
	r := newSemesterRouter(repo)

	body := `{"title":"Autumn","year":2025,"code":"02","startMonth":"January","endMonth":"April"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/academic-semesters", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	require.NotEmpty(t, envelope.ErrorMessages)
	assert.Nil(t, repo.created)
}

func TestSemesterHandlerGetMissing(t *testing.T) {
	r := newSemesterRouter(&stubSemesterRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/academic-semesters/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotFoundRouteEnvelope(t *testing.T) {
	r := newSemesterRouter(&stubSemesterRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "Not Found", envelope.Message)
	require.Len(t, envelope.ErrorMessages, 1)
	assert.Equal(t, "/no-such-route", envelope.ErrorMessages[0].Path)
}
