package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/univista/ums-api/internal/models"
	appErrors "github.com/univista/ums-api/pkg/errors"
)

type academicFacultyRepository interface {
	List(ctx context.Context, filter models.AcademicFacultyFilter) ([]models.AcademicFaculty, int, error)
	FindByID(ctx context.Context, id string) (*models.AcademicFaculty, error)
	ExistsByTitle(ctx context.Context, title string, excludeID string) (bool, error)
	Create(ctx context.Context, faculty *models.AcademicFaculty) error
	Update(ctx context.Context, faculty *models.AcademicFaculty) error
	Delete(ctx context.Context, id string) (*models.AcademicFaculty, error)
}

// AcademicFacultyService provides academic faculty use cases.
type AcademicFacultyService struct {
	repo      academicFacultyRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAcademicFacultyService constructs an AcademicFacultyService.
func NewAcademicFacultyService(repo academicFacultyRepository, validate *validator.Validate, logger *zap.Logger) *AcademicFacultyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AcademicFacultyService{repo: repo, validator: validate, logger: logger}
}

// List returns academic faculties matching the filter plus the unsliced total.
func (s *AcademicFacultyService) List(ctx context.Context, filter models.AcademicFacultyFilter) ([]models.AcademicFaculty, int, error) {
	faculties, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list academic faculties")
	}
	return faculties, total, nil
}

// Get fetches a single academic faculty by id.
func (s *AcademicFacultyService) Get(ctx context.Context, id string) (*models.AcademicFaculty, error) {
	faculty, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "academic faculty not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch academic faculty")
	}
	return faculty, nil
}

// Create inserts a new academic faculty after checking title uniqueness.
func (s *AcademicFacultyService) Create(ctx context.Context, req models.TitleCreateRequest) (*models.AcademicFaculty, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByTitle(ctx, req.Title, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check faculty title")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "Academic faculty is already exist!")
	}

	faculty := &models.AcademicFaculty{Title: req.Title}
	if err := s.repo.Create(ctx, faculty); err != nil {
		return nil, appErrors.FromError(err)
	}
	return faculty, nil
}

// Update applies a partial update to an academic faculty.
func (s *AcademicFacultyService) Update(ctx context.Context, id string, req models.TitleUpdateRequest) (*models.AcademicFaculty, error) {
	faculty, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "academic faculty not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch academic faculty")
	}

	if req.Title != nil {
		exists, err := s.repo.ExistsByTitle(ctx, *req.Title, faculty.ID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check faculty title")
		}
		if exists {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Academic faculty is already exist!")
		}
		faculty.Title = *req.Title
	}

	if err := s.repo.Update(ctx, faculty); err != nil {
		return nil, appErrors.FromError(err)
	}
	return faculty, nil
}

// Delete removes an academic faculty and returns the removed record.
func (s *AcademicFacultyService) Delete(ctx context.Context, id string) (*models.AcademicFaculty, error) {
	faculty, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "academic faculty not found")
		}
		return nil, appErrors.FromError(err)
	}
	return faculty, nil
}
