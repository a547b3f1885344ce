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

type facultyRepository interface {
	List(ctx context.Context, filter models.FacultyFilter) ([]models.FacultyDetail, int, error)
	FindByBusinessID(ctx context.Context, facultyID string) (*models.FacultyDetail, error)
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, facultyID string) (*models.Faculty, error)
}

// FacultyService provides faculty profile use cases.
type FacultyService struct {
	repo      facultyRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFacultyService constructs a FacultyService.
func NewFacultyService(repo facultyRepository, validate *validator.Validate, logger *zap.Logger) *FacultyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &FacultyService{repo: repo, validator: validate, logger: logger}
}

// List returns faculties matching the filter plus the unsliced total.
func (s *FacultyService) List(ctx context.Context, filter models.FacultyFilter) ([]models.FacultyDetail, int, error) {
	faculties, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list faculties")
	}
	return faculties, total, nil
}

// Get fetches a faculty by business id with org units expanded.
func (s *FacultyService) Get(ctx context.Context, facultyID string) (*models.FacultyDetail, error) {
	faculty, err := s.repo.FindByBusinessID(ctx, facultyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "faculty not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch faculty")
	}
	return faculty, nil
}

// Update applies a partial update with field-by-field name merging.
func (s *FacultyService) Update(ctx context.Context, facultyID string, req models.FacultyUpdate) (*models.FacultyDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	detail, err := s.repo.FindByBusinessID(ctx, facultyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "faculty not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch faculty")
	}
	faculty := detail.Faculty

	applyFacultyUpdate(&faculty, req)

	if err := s.repo.Update(ctx, &faculty); err != nil {
		return nil, appErrors.FromError(err)
	}

	updated, err := s.repo.FindByBusinessID(ctx, facultyID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload faculty")
	}
	return updated, nil
}

// Delete removes a faculty by business id and returns the removed record.
func (s *FacultyService) Delete(ctx context.Context, facultyID string) (*models.Faculty, error) {
	faculty, err := s.repo.Delete(ctx, facultyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "faculty not found")
		}
		return nil, appErrors.FromError(err)
	}
	return faculty, nil
}

func applyFacultyUpdate(faculty *models.Faculty, req models.FacultyUpdate) {
	if req.Name != nil {
		applyNameUpdate(&faculty.Name, *req.Name)
	}
	if req.Gender != nil {
		faculty.Gender = *req.Gender
	}
	if req.DateOfBirth != nil {
		faculty.DateOfBirth = *req.DateOfBirth
	}
	if req.Email != nil {
		faculty.Email = *req.Email
	}
	if req.ContactNo != nil {
		faculty.ContactNo = *req.ContactNo
	}
	if req.EmergencyContactNo != nil {
		faculty.EmergencyContactNo = *req.EmergencyContactNo
	}
	if req.PresentAddress != nil {
		faculty.PresentAddress = *req.PresentAddress
	}
	if req.PermanentAddress != nil {
		faculty.PermanentAddress = *req.PermanentAddress
	}
	if req.BloodGroup != nil {
		faculty.BloodGroup = req.BloodGroup
	}
	if req.Designation != nil {
		faculty.Designation = *req.Designation
	}
	if req.AcademicDepartmentID != nil {
		faculty.AcademicDepartmentID = *req.AcademicDepartmentID
	}
	if req.AcademicFacultyID != nil {
		faculty.AcademicFacultyID = *req.AcademicFacultyID
	}
	if req.ProfileImage != nil {
		faculty.ProfileImage = req.ProfileImage
	}
}
