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

type academicDepartmentRepository interface {
	List(ctx context.Context, filter models.AcademicDepartmentFilter) ([]models.AcademicDepartmentDetail, int, error)
	FindByID(ctx context.Context, id string) (*models.AcademicDepartmentDetail, error)
	ExistsByTitle(ctx context.Context, title string, excludeID string) (bool, error)
	Create(ctx context.Context, department *models.AcademicDepartment) error
	Update(ctx context.Context, department *models.AcademicDepartment) error
	Delete(ctx context.Context, id string) (*models.AcademicDepartment, error)
}

// AcademicDepartmentService provides academic department use cases.
type AcademicDepartmentService struct {
	repo      academicDepartmentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAcademicDepartmentService constructs an AcademicDepartmentService.
func NewAcademicDepartmentService(repo academicDepartmentRepository, validate *validator.Validate, logger *zap.Logger) *AcademicDepartmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AcademicDepartmentService{repo: repo, validator: validate, logger: logger}
}

// List returns departments matching the filter plus the unsliced total.
func (s *AcademicDepartmentService) List(ctx context.Context, filter models.AcademicDepartmentFilter) ([]models.AcademicDepartmentDetail, int, error) {
	departments, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list academic departments")
	}
	return departments, total, nil
}

// Get fetches a single department by id with its faculty title expanded.
func (s *AcademicDepartmentService) Get(ctx context.Context, id string) (*models.AcademicDepartmentDetail, error) {
	department, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "academic department not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch academic department")
	}
	return department, nil
}

// Create inserts a new department after checking title uniqueness. A broken
// faculty reference surfaces as a 400 through the FK violation mapping.
func (s *AcademicDepartmentService) Create(ctx context.Context, req models.AcademicDepartmentCreateRequest) (*models.AcademicDepartment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByTitle(ctx, req.Title, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check department title")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "Academic department is already exist!")
	}

	department := &models.AcademicDepartment{
		Title:             req.Title,
		AcademicFacultyID: req.AcademicFacultyID,
	}
	if err := s.repo.Create(ctx, department); err != nil {
		return nil, appErrors.FromError(err)
	}
	return department, nil
}

// Update applies a partial update to a department.
func (s *AcademicDepartmentService) Update(ctx context.Context, id string, req models.AcademicDepartmentUpdateRequest) (*models.AcademicDepartment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "academic department not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch academic department")
	}
	department := detail.AcademicDepartment

	if req.Title != nil {
		exists, err := s.repo.ExistsByTitle(ctx, *req.Title, department.ID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check department title")
		}
		if exists {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Academic department is already exist!")
		}
		department.Title = *req.Title
	}
	if req.AcademicFacultyID != nil {
		department.AcademicFacultyID = *req.AcademicFacultyID
	}

	if err := s.repo.Update(ctx, &department); err != nil {
		return nil, appErrors.FromError(err)
	}
	return &department, nil
}

// Delete removes a department and returns the removed record.
func (s *AcademicDepartmentService) Delete(ctx context.Context, id string) (*models.AcademicDepartment, error) {
	department, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "academic department not found")
		}
		return nil, appErrors.FromError(err)
	}
	return department, nil
}
