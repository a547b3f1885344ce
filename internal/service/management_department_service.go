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

type managementDepartmentRepository interface {
	List(ctx context.Context, filter models.ManagementDepartmentFilter) ([]models.ManagementDepartment, int, error)
	FindByID(ctx context.Context, id string) (*models.ManagementDepartment, error)
	ExistsByTitle(ctx context.Context, title string, excludeID string) (bool, error)
	Create(ctx context.Context, department *models.ManagementDepartment) error
	Update(ctx context.Context, department *models.ManagementDepartment) error
	Delete(ctx context.Context, id string) (*models.ManagementDepartment, error)
}

// ManagementDepartmentService provides management department use cases.
type ManagementDepartmentService struct {
	repo      managementDepartmentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewManagementDepartmentService constructs a ManagementDepartmentService.
func NewManagementDepartmentService(repo managementDepartmentRepository, validate *validator.Validate, logger *zap.Logger) *ManagementDepartmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ManagementDepartmentService{repo: repo, validator: validate, logger: logger}
}

// List returns management departments matching the filter plus the unsliced total.
func (s *ManagementDepartmentService) List(ctx context.Context, filter models.ManagementDepartmentFilter) ([]models.ManagementDepartment, int, error) {
	departments, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list management departments")
	}
	return departments, total, nil
}

// Get fetches a single management department by id.
func (s *ManagementDepartmentService) Get(ctx context.Context, id string) (*models.ManagementDepartment, error) {
	department, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "management department not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch management department")
	}
	return department, nil
}

// Create inserts a new management department after checking title uniqueness.
func (s *ManagementDepartmentService) Create(ctx context.Context, req models.TitleCreateRequest) (*models.ManagementDepartment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByTitle(ctx, req.Title, "")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check department title")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "Management department is already exist!")
	}

	department := &models.ManagementDepartment{Title: req.Title}
	if err := s.repo.Create(ctx, department); err != nil {
		return nil, appErrors.FromError(err)
	}
	return department, nil
}

// Update applies a partial update to a management department.
func (s *ManagementDepartmentService) Update(ctx context.Context, id string, req models.TitleUpdateRequest) (*models.ManagementDepartment, error) {
	department, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "management department not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch management department")
	}

	if req.Title != nil {
		exists, err := s.repo.ExistsByTitle(ctx, *req.Title, department.ID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check department title")
		}
		if exists {
			return nil, appErrors.Clone(appErrors.ErrConflict, "Management department is already exist!")
		}
		department.Title = *req.Title
	}

	if err := s.repo.Update(ctx, department); err != nil {
		return nil, appErrors.FromError(err)
	}
	return department, nil
}

// Delete removes a management department and returns the removed record.
func (s *ManagementDepartmentService) Delete(ctx context.Context, id string) (*models.ManagementDepartment, error) {
	department, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "management department not found")
		}
		return nil, appErrors.FromError(err)
	}
	return department, nil
}
