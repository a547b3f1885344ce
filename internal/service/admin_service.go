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

type adminRepository interface {
	List(ctx context.Context, filter models.AdminFilter) ([]models.AdminDetail, int, error)
	FindByBusinessID(ctx context.Context, adminID string) (*models.AdminDetail, error)
	Update(ctx context.Context, admin *models.Admin) error
	Delete(ctx context.Context, adminID string) (*models.Admin, error)
}

// AdminService provides admin profile use cases.
type AdminService struct {
	repo      adminRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAdminService constructs an AdminService.
func NewAdminService(repo adminRepository, validate *validator.Validate, logger *zap.Logger) *AdminService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AdminService{repo: repo, validator: validate, logger: logger}
}

// List returns admins matching the filter plus the unsliced total.
func (s *AdminService) List(ctx context.Context, filter models.AdminFilter) ([]models.AdminDetail, int, error) {
	admins, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list admins")
	}
	return admins, total, nil
}

// Get fetches an admin by business id with its department expanded.
func (s *AdminService) Get(ctx context.Context, adminID string) (*models.AdminDetail, error) {
	admin, err := s.repo.FindByBusinessID(ctx, adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "admin not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch admin")
	}
	return admin, nil
}

// Update applies a partial update with field-by-field name merging.
func (s *AdminService) Update(ctx context.Context, adminID string, req models.AdminUpdate) (*models.AdminDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	detail, err := s.repo.FindByBusinessID(ctx, adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "admin not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch admin")
	}
	admin := detail.Admin

	applyAdminUpdate(&admin, req)

	if err := s.repo.Update(ctx, &admin); err != nil {
		return nil, appErrors.FromError(err)
	}

	updated, err := s.repo.FindByBusinessID(ctx, adminID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload admin")
	}
	return updated, nil
}

// Delete removes an admin by business id and returns the removed record.
func (s *AdminService) Delete(ctx context.Context, adminID string) (*models.Admin, error) {
	admin, err := s.repo.Delete(ctx, adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "admin not found")
		}
		return nil, appErrors.FromError(err)
	}
	return admin, nil
}

func applyAdminUpdate(admin *models.Admin, req models.AdminUpdate) {
	if req.Name != nil {
		applyNameUpdate(&admin.Name, *req.Name)
	}
	if req.Gender != nil {
		admin.Gender = *req.Gender
	}
	if req.DateOfBirth != nil {
		admin.DateOfBirth = *req.DateOfBirth
	}
	if req.Email != nil {
		admin.Email = *req.Email
	}
	if req.ContactNo != nil {
		admin.ContactNo = *req.ContactNo
	}
	if req.EmergencyContactNo != nil {
		admin.EmergencyContactNo = *req.EmergencyContactNo
	}
	if req.PresentAddress != nil {
		admin.PresentAddress = *req.PresentAddress
	}
	if req.PermanentAddress != nil {
		admin.PermanentAddress = *req.PermanentAddress
	}
	if req.BloodGroup != nil {
		admin.BloodGroup = req.BloodGroup
	}
	if req.Designation != nil {
		admin.Designation = *req.Designation
	}
	if req.ManagementDepartmentID != nil {
		admin.ManagementDepartmentID = *req.ManagementDepartmentID
	}
	if req.ProfileImage != nil {
		admin.ProfileImage = req.ProfileImage
	}
}
