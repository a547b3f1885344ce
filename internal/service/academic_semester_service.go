package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/univista/ums-api/internal/models"
	appErrors "github.com/univista/ums-api/pkg/errors"
)

const semesterCachePrefix = "semesters:list:"

type academicSemesterRepository interface {
	List(ctx context.Context, filter models.AcademicSemesterFilter) ([]models.AcademicSemester, int, error)
	FindByID(ctx context.Context, id string) (*models.AcademicSemester, error)
	ExistsByTitleAndYear(ctx context.Context, title string, year int, excludeID string) (bool, error)
	Create(ctx context.Context, semester *models.AcademicSemester) error
	Update(ctx context.Context, semester *models.AcademicSemester) error
	Delete(ctx context.Context, id string) (*models.AcademicSemester, error)
}

// AcademicSemesterService provides semester use cases. List results are
// cached; any write invalidates the whole list keyspace.
type AcademicSemesterService struct {
	repo      academicSemesterRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAcademicSemesterService constructs an AcademicSemesterService.
func NewAcademicSemesterService(repo academicSemesterRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *AcademicSemesterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AcademicSemesterService{repo: repo, cache: cache, validator: validate, logger: logger}
}

type cachedSemesterList struct {
	Semesters []models.AcademicSemester `json:"semesters"`
	Total     int                       `json:"total"`
}

// List returns semesters matching the filter plus the unsliced total.
func (s *AcademicSemesterService) List(ctx context.Context, filter models.AcademicSemesterFilter) ([]models.AcademicSemester, int, error) {
	cacheKey := semesterListCacheKey(filter)

	var cached cachedSemesterList
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached.Semesters, cached.Total, nil
	}

	semesters, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list semesters")
	}

	if err := s.cache.Set(ctx, cacheKey, cachedSemesterList{Semesters: semesters, Total: total}, 0); err != nil {
		s.logger.Warn("cache semester list", zap.Error(err))
	}

	return semesters, total, nil
}

// Get fetches a single semester by id.
func (s *AcademicSemesterService) Get(ctx context.Context, id string) (*models.AcademicSemester, error) {
	semester, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch semester")
	}
	return semester, nil
}

// Create validates the title/code pairing and the (title, year) uniqueness
// rule before inserting.
func (s *AcademicSemesterService) Create(ctx context.Context, req models.AcademicSemesterCreateRequest) (*models.AcademicSemester, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if models.SemesterTitleCodes[req.Title] != req.Code {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Invalid Semester Code")
	}
	if err := validateSemesterMonths(req.StartMonth, req.EndMonth); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByTitleAndYear(ctx, req.Title, req.Year, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check semester uniqueness")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "Academic semester is already exist!")
	}

	semester := &models.AcademicSemester{
		Title:      req.Title,
		Year:       req.Year,
		Code:       req.Code,
		StartMonth: req.StartMonth,
		EndMonth:   req.EndMonth,
	}
	if err := s.repo.Create(ctx, semester); err != nil {
		return nil, appErrors.FromError(err)
	}

	s.invalidate(ctx)
	return semester, nil
}

// Update applies a partial update. Changing the title requires the matching
// code to travel with it.
func (s *AcademicSemesterService) Update(ctx context.Context, id string, req models.AcademicSemesterUpdateRequest) (*models.AcademicSemester, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if (req.Title == nil) != (req.Code == nil) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Either both title and code should be provided or neither")
	}
	if req.Title != nil && models.SemesterTitleCodes[*req.Title] != *req.Code {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Invalid Semester Code")
	}

	semester, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch semester")
	}

	if req.Title != nil {
		semester.Title = *req.Title
		semester.Code = *req.Code
	}
	if req.Year != nil {
		semester.Year = *req.Year
	}
	if req.StartMonth != nil {
		semester.StartMonth = *req.StartMonth
	}
	if req.EndMonth != nil {
		semester.EndMonth = *req.EndMonth
	}
	if err := validateSemesterMonths(semester.StartMonth, semester.EndMonth); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByTitleAndYear(ctx, semester.Title, semester.Year, semester.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check semester uniqueness")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "Academic semester is already exist!")
	}

	if err := s.repo.Update(ctx, semester); err != nil {
		return nil, appErrors.FromError(err)
	}

	s.invalidate(ctx)
	return semester, nil
}

// Delete removes a semester and returns the removed record.
func (s *AcademicSemesterService) Delete(ctx context.Context, id string) (*models.AcademicSemester, error) {
	semester, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return nil, appErrors.FromError(err)
	}

	s.invalidate(ctx)
	return semester, nil
}

func (s *AcademicSemesterService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, semesterCachePrefix+"*"); err != nil {
		s.logger.Warn("invalidate semester cache", zap.Error(err))
	}
}

func validateSemesterMonths(start, end string) error {
	if !validMonth(start) {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%q is not a valid month", start))
	}
	if !validMonth(end) {
		return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%q is not a valid month", end))
	}
	return nil
}

func validMonth(month string) bool {
	for _, m := range models.SemesterMonths {
		if m == month {
			return true
		}
	}
	return false
}

func semesterListCacheKey(filter models.AcademicSemesterFilter) string {
	year := ""
	if filter.Year != nil {
		year = fmt.Sprintf("%d", *filter.Year)
	}
	return fmt.Sprintf("%s%s:%s:%s:%s:%d:%d:%s:%s",
		semesterCachePrefix, filter.SearchTerm, filter.Title, filter.Code, year,
		filter.Options.Page, filter.Options.Limit, filter.Options.SortBy, filter.Options.SortOrder)
}
