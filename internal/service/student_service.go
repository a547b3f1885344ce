package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/univista/ums-api/internal/models"
	appErrors "github.com/univista/ums-api/pkg/errors"
	"github.com/univista/ums-api/pkg/export"
	"github.com/univista/ums-api/pkg/query"
)

type studentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, int, error)
	FindByBusinessID(ctx context.Context, studentID string) (*models.StudentDetail, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, studentID string) (*models.Student, error)
}

// StudentService provides student profile use cases. Creation happens through
// the user provisioning flow, not here.
type StudentService struct {
	repo      studentRepository
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(repo studentRepository, csv *export.CSVExporter, pdf *export.PDFExporter, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &StudentService{repo: repo, csv: csv, pdf: pdf, validator: validate, logger: logger}
}

// List returns students matching the filter plus the unsliced total.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, int, error) {
	students, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, total, nil
}

// Get fetches a student by business id with org units expanded.
func (s *StudentService) Get(ctx context.Context, studentID string) (*models.StudentDetail, error) {
	student, err := s.repo.FindByBusinessID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch student")
	}
	return student, nil
}

// Update applies a partial update. Nested name and guardian documents merge
// field by field, so an omitted sibling keeps its stored value.
func (s *StudentService) Update(ctx context.Context, studentID string, req models.StudentUpdate) (*models.StudentDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	detail, err := s.repo.FindByBusinessID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch student")
	}
	student := detail.Student

	applyStudentUpdate(&student, req)

	if err := s.repo.Update(ctx, &student); err != nil {
		return nil, appErrors.FromError(err)
	}

	updated, err := s.repo.FindByBusinessID(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload student")
	}
	return updated, nil
}

// Delete removes a student by business id and returns the removed record.
func (s *StudentService) Delete(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := s.repo.Delete(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.FromError(err)
	}
	return student, nil
}

// ExportRoster renders the filtered student roster as CSV or PDF. The full
// roster is collected page by page before rendering.
func (s *StudentService) ExportRoster(ctx context.Context, filter models.StudentFilter, format string) ([]byte, string, error) {
	filter.Options.Page = 1
	filter.Options.Limit = query.MaxLimit

	var all []models.StudentDetail
	for {
		students, total, err := s.repo.List(ctx, filter)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
		}
		all = append(all, students...)
		if len(students) == 0 || len(all) >= total {
			break
		}
		filter.Options.Page++
	}

	dataset := buildRosterDataset(all)

	switch strings.ToLower(format) {
	case "csv", "":
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return payload, "text/csv", nil
	case "pdf":
		payload, err := s.pdf.Render(dataset, "Student Roster")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func buildRosterDataset(students []models.StudentDetail) export.Dataset {
	headers := []string{"ID", "Name", "Email", "Contact No", "Semester", "Department", "Faculty"}
	rows := make([]map[string]string, 0, len(students))
	for _, st := range students {
		name := strings.TrimSpace(strings.Join([]string{st.Name.FirstName, st.Name.MiddleName, st.Name.LastName}, " "))
		semester := ""
		if st.SemesterTitle != nil && st.SemesterYear != nil {
			semester = fmt.Sprintf("%s %d", *st.SemesterTitle, *st.SemesterYear)
		}
		rows = append(rows, map[string]string{
			"ID":         st.StudentID,
			"Name":       strings.Join(strings.Fields(name), " "),
			"Email":      st.Email,
			"Contact No": st.ContactNo,
			"Semester":   semester,
			"Department": stringValue(st.AcademicDepartmentTitle),
			"Faculty":    stringValue(st.AcademicFacultyTitle),
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func applyStudentUpdate(student *models.Student, req models.StudentUpdate) {
	if req.Name != nil {
		applyNameUpdate(&student.Name, *req.Name)
	}
	if req.Gender != nil {
		student.Gender = *req.Gender
	}
	if req.DateOfBirth != nil {
		student.DateOfBirth = *req.DateOfBirth
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.ContactNo != nil {
		student.ContactNo = *req.ContactNo
	}
	if req.EmergencyContactNo != nil {
		student.EmergencyContactNo = *req.EmergencyContactNo
	}
	if req.PresentAddress != nil {
		student.PresentAddress = *req.PresentAddress
	}
	if req.PermanentAddress != nil {
		student.PermanentAddress = *req.PermanentAddress
	}
	if req.BloodGroup != nil {
		student.BloodGroup = req.BloodGroup
	}
	if req.Guardian != nil {
		applyGuardianUpdate(&student.Guardian, *req.Guardian)
	}
	if req.LocalGuardian != nil {
		applyLocalGuardianUpdate(&student.LocalGuardian, *req.LocalGuardian)
	}
	if req.AcademicSemesterID != nil {
		student.AcademicSemesterID = *req.AcademicSemesterID
	}
	if req.AcademicDepartmentID != nil {
		student.AcademicDepartmentID = *req.AcademicDepartmentID
	}
	if req.AcademicFacultyID != nil {
		student.AcademicFacultyID = *req.AcademicFacultyID
	}
	if req.ProfileImage != nil {
		student.ProfileImage = req.ProfileImage
	}
}

func applyNameUpdate(name *models.PersonName, req models.PersonNameUpdate) {
	if req.FirstName != nil {
		name.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		name.MiddleName = *req.MiddleName
	}
	if req.LastName != nil {
		name.LastName = *req.LastName
	}
}

func applyGuardianUpdate(guardian *models.Guardian, req models.GuardianUpdate) {
	if req.FatherName != nil {
		guardian.FatherName = *req.FatherName
	}
	if req.FatherOccupation != nil {
		guardian.FatherOccupation = *req.FatherOccupation
	}
	if req.FatherContactNo != nil {
		guardian.FatherContactNo = *req.FatherContactNo
	}
	if req.MotherName != nil {
		guardian.MotherName = *req.MotherName
	}
	if req.MotherOccupation != nil {
		guardian.MotherOccupation = *req.MotherOccupation
	}
	if req.MotherContactNo != nil {
		guardian.MotherContactNo = *req.MotherContactNo
	}
	if req.Address != nil {
		guardian.Address = *req.Address
	}
}

func applyLocalGuardianUpdate(guardian *models.LocalGuardian, req models.LocalGuardianUpdate) {
	if req.Name != nil {
		guardian.Name = *req.Name
	}
	if req.Occupation != nil {
		guardian.Occupation = *req.Occupation
	}
	if req.ContactNo != nil {
		guardian.ContactNo = *req.ContactNo
	}
	if req.Address != nil {
		guardian.Address = *req.Address
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
