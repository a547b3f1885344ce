package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/univista/ums-api/internal/models"
	appErrors "github.com/univista/ums-api/pkg/errors"
)

type userRepository interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.User, int, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	ProvisionStudent(ctx context.Context, student *models.Student, user *models.User, prefix string) error
	ProvisionFaculty(ctx context.Context, faculty *models.Faculty, user *models.User, prefix string) error
	ProvisionAdmin(ctx context.Context, admin *models.Admin, user *models.User, prefix string) error
}

type semesterReader interface {
	FindByID(ctx context.Context, id string) (*models.AcademicSemester, error)
}

type studentReader interface {
	FindByID(ctx context.Context, id string) (*models.StudentDetail, error)
}

type facultyReader interface {
	FindByID(ctx context.Context, id string) (*models.FacultyDetail, error)
}

type adminReader interface {
	FindByID(ctx context.Context, id string) (*models.AdminDetail, error)
}

// UserConfig carries provisioning defaults for new accounts.
type UserConfig struct {
	DefaultStudentPassword string
	DefaultFacultyPassword string
	DefaultAdminPassword   string
	BcryptCost             int
}

// UserService provisions accounts and serves user records with their role
// profile expanded.
type UserService struct {
	repo      userRepository
	semesters semesterReader
	students  studentReader
	faculties facultyReader
	admins    adminReader
	validator *validator.Validate
	logger    *zap.Logger
	config    UserConfig
}

// NewUserService constructs a UserService.
func NewUserService(repo userRepository, semesters semesterReader, students studentReader, faculties facultyReader, admins adminReader, validate *validator.Validate, logger *zap.Logger, config UserConfig) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		repo:      repo,
		semesters: semesters,
		students:  students,
		faculties: faculties,
		admins:    admins,
		validator: validate,
		logger:    logger,
		config:    config,
	}
}

// List returns users matching the filter plus the unsliced total.
func (s *UserService) List(ctx context.Context, filter models.UserFilter) ([]models.User, int, error) {
	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	return users, total, nil
}

// Get fetches a user by business id with its role profile expanded.
func (s *UserService) Get(ctx context.Context, id string) (*models.UserDetail, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch user")
	}
	return s.expand(ctx, user)
}

// CreateStudent provisions a student profile and its user. The business id is
// {yy}{semesterCode}{sequence}, derived from the enrollment semester.
func (s *UserService) CreateStudent(ctx context.Context, req models.CreateStudentRequest) (*models.UserDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	semester, err := s.semesters.FindByID(ctx, req.Student.AcademicSemesterID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "academic semester not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch semester")
	}
	prefix := fmt.Sprintf("%02d%s", semester.Year%100, semester.Code)

	hash, err := s.hashPassword(req.Password, s.config.DefaultStudentPassword)
	if err != nil {
		return nil, err
	}

	student := studentFromCreate(req.Student)
	user := &models.User{
		Role:                models.RoleStudent,
		PasswordHash:        hash,
		NeedsPasswordChange: true,
	}

	if err := s.repo.ProvisionStudent(ctx, student, user, prefix); err != nil {
		return nil, appErrors.FromError(err)
	}

	detail, err := s.students.FindByID(ctx, student.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload student")
	}
	return &models.UserDetail{User: *user, Student: detail}, nil
}

// CreateFaculty provisions a faculty profile and its user under the F- prefix.
func (s *UserService) CreateFaculty(ctx context.Context, req models.CreateFacultyRequest) (*models.UserDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(req.Password, s.config.DefaultFacultyPassword)
	if err != nil {
		return nil, err
	}

	faculty := facultyFromCreate(req.Faculty)
	user := &models.User{
		Role:                models.RoleFaculty,
		PasswordHash:        hash,
		NeedsPasswordChange: true,
	}

	if err := s.repo.ProvisionFaculty(ctx, faculty, user, "F-"); err != nil {
		return nil, appErrors.FromError(err)
	}

	detail, err := s.faculties.FindByID(ctx, faculty.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload faculty")
	}
	return &models.UserDetail{User: *user, Faculty: detail}, nil
}

// CreateAdmin provisions an admin profile and its user under the A- prefix.
func (s *UserService) CreateAdmin(ctx context.Context, req models.CreateAdminRequest) (*models.UserDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(req.Password, s.config.DefaultAdminPassword)
	if err != nil {
		return nil, err
	}

	admin := adminFromCreate(req.Admin)
	user := &models.User{
		Role:                models.RoleAdmin,
		PasswordHash:        hash,
		NeedsPasswordChange: true,
	}

	if err := s.repo.ProvisionAdmin(ctx, admin, user, "A-"); err != nil {
		return nil, appErrors.FromError(err)
	}

	detail, err := s.admins.FindByID(ctx, admin.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload admin")
	}
	return &models.UserDetail{User: *user, Admin: detail}, nil
}

func (s *UserService) hashPassword(password, fallback string) (string, error) {
	if password == "" {
		password = fallback
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.config.BcryptCost)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}
	return string(hash), nil
}

func (s *UserService) expand(ctx context.Context, user *models.User) (*models.UserDetail, error) {
	detail := &models.UserDetail{User: *user}
	var err error
	switch {
	case user.StudentID != nil:
		detail.Student, err = s.students.FindByID(ctx, *user.StudentID)
	case user.FacultyID != nil:
		detail.Faculty, err = s.faculties.FindByID(ctx, *user.FacultyID)
	case user.AdminID != nil:
		detail.Admin, err = s.admins.FindByID(ctx, *user.AdminID)
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user profile")
	}
	return detail, nil
}

func studentFromCreate(req models.StudentCreate) *models.Student {
	return &models.Student{
		Name:                 req.Name,
		Gender:               req.Gender,
		DateOfBirth:          req.DateOfBirth,
		Email:                req.Email,
		ContactNo:            req.ContactNo,
		EmergencyContactNo:   req.EmergencyContactNo,
		PresentAddress:       req.PresentAddress,
		PermanentAddress:     req.PermanentAddress,
		BloodGroup:           req.BloodGroup,
		Guardian:             req.Guardian,
		LocalGuardian:        req.LocalGuardian,
		AcademicSemesterID:   req.AcademicSemesterID,
		AcademicDepartmentID: req.AcademicDepartmentID,
		AcademicFacultyID:    req.AcademicFacultyID,
		ProfileImage:         req.ProfileImage,
	}
}

func facultyFromCreate(req models.FacultyCreate) *models.Faculty {
	return &models.Faculty{
		Name:                 req.Name,
		Gender:               req.Gender,
		DateOfBirth:          req.DateOfBirth,
		Email:                req.Email,
		ContactNo:            req.ContactNo,
		EmergencyContactNo:   req.EmergencyContactNo,
		PresentAddress:       req.PresentAddress,
		PermanentAddress:     req.PermanentAddress,
		BloodGroup:           req.BloodGroup,
		Designation:          req.Designation,
		AcademicDepartmentID: req.AcademicDepartmentID,
		AcademicFacultyID:    req.AcademicFacultyID,
		ProfileImage:         req.ProfileImage,
	}
}

func adminFromCreate(req models.AdminCreate) *models.Admin {
	return &models.Admin{
		Name:                   req.Name,
		Gender:                 req.Gender,
		DateOfBirth:            req.DateOfBirth,
		Email:                  req.Email,
		ContactNo:              req.ContactNo,
		EmergencyContactNo:     req.EmergencyContactNo,
		PresentAddress:         req.PresentAddress,
		PermanentAddress:       req.PermanentAddress,
		BloodGroup:             req.BloodGroup,
		Designation:            req.Designation,
		ManagementDepartmentID: req.ManagementDepartmentID,
		ProfileImage:           req.ProfileImage,
	}
}
