package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/univista/ums-api/internal/models"
	"github.com/univista/ums-api/pkg/query"
)

const facultyColumns = `fa.id, fa.faculty_id, fa.name, fa.gender, fa.date_of_birth, fa.email, fa.contact_no,
        fa.emergency_contact_no, fa.present_address, fa.permanent_address, fa.blood_group, fa.designation,
        fa.academic_department_id, fa.academic_faculty_id, fa.profile_image, fa.created_at, fa.updated_at,
        d.title AS academic_department_title, f.title AS academic_faculty_title`

const facultyJoins = `FROM faculties fa
        LEFT JOIN academic_departments d ON d.id = fa.academic_department_id
        LEFT JOIN academic_faculties f ON f.id = fa.academic_faculty_id`

var facultySortable = map[string]string{
	"id":          "fa.faculty_id",
	"email":       "fa.email",
	"designation": "fa.designation",
	"created_at":  "fa.created_at",
}

// FacultyRepository manages persistence for faculty profiles.
type FacultyRepository struct {
	db *sqlx.DB
}

// NewFacultyRepository constructs a FacultyRepository.
func NewFacultyRepository(db *sqlx.DB) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// List returns faculties with their org units expanded.
func (r *FacultyRepository) List(ctx context.Context, filter models.FacultyFilter) ([]models.FacultyDetail, int, error) {
	b := query.NewBuilder()
	b.Search(filter.SearchTerm,
		"fa.faculty_id", "fa.email", "fa.contact_no", "fa.designation",
		"fa.name->>'firstName'", "fa.name->>'middleName'", "fa.name->>'lastName'")
	if filter.ID != "" {
		b.Equal("fa.faculty_id", filter.ID)
	}
	if filter.Email != "" {
		b.Equal("fa.email", filter.Email)
	}
	if filter.ContactNo != "" {
		b.Equal("fa.contact_no", filter.ContactNo)
	}
	if filter.EmergencyContactNo != "" {
		b.Equal("fa.emergency_contact_no", filter.EmergencyContactNo)
	}
	if filter.BloodGroup != "" {
		b.Equal("fa.blood_group", filter.BloodGroup)
	}
	if filter.Designation != "" {
		b.Equal("fa.designation", filter.Designation)
	}

	slice := filter.Options.Resolve(facultySortable, "fa.created_at")

	base := facultyJoins + b.Where()
	q := fmt.Sprintf("SELECT %s %s ORDER BY %s LIMIT %d OFFSET %d",
		facultyColumns, base, slice.OrderBy, slice.Limit, slice.Offset)

	var faculties []models.FacultyDetail
	if err := r.db.SelectContext(ctx, &faculties, q, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("list faculties: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) "+base, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("count faculties: %w", err)
	}
	return faculties, total, nil
}

// FindByBusinessID fetches a faculty by its human-readable id.
func (r *FacultyRepository) FindByBusinessID(ctx context.Context, facultyID string) (*models.FacultyDetail, error) {
	q := fmt.Sprintf("SELECT %s %s WHERE fa.faculty_id = $1", facultyColumns, facultyJoins)
	var detail models.FacultyDetail
	if err := r.db.GetContext(ctx, &detail, q, facultyID); err != nil {
		return nil, err
	}
	return &detail, nil
}

// FindByID fetches a faculty by its surrogate key.
func (r *FacultyRepository) FindByID(ctx context.Context, id string) (*models.FacultyDetail, error) {
	q := fmt.Sprintf("SELECT %s %s WHERE fa.id = $1", facultyColumns, facultyJoins)
	var detail models.FacultyDetail
	if err := r.db.GetContext(ctx, &detail, q, id); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Update writes the full faculty row identified by business id.
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	faculty.UpdatedAt = time.Now().UTC()
	const q = `UPDATE faculties SET name = :name, gender = :gender, date_of_birth = :date_of_birth,
        email = :email, contact_no = :contact_no, emergency_contact_no = :emergency_contact_no,
        present_address = :present_address, permanent_address = :permanent_address,
        blood_group = :blood_group, designation = :designation,
        academic_department_id = :academic_department_id, academic_faculty_id = :academic_faculty_id,
        profile_image = :profile_image, updated_at = :updated_at WHERE faculty_id = :faculty_id`
	if _, err := r.db.NamedExecContext(ctx, q, faculty); err != nil {
		return fmt.Errorf("update faculty: %w", err)
	}
	return nil
}

// Delete removes a faculty by business id and returns the removed row.
func (r *FacultyRepository) Delete(ctx context.Context, facultyID string) (*models.Faculty, error) {
	const q = `DELETE FROM faculties WHERE faculty_id = $1
        RETURNING id, faculty_id, name, gender, date_of_birth, email, contact_no,
        emergency_contact_no, present_address, permanent_address, blood_group, designation,
        academic_department_id, academic_faculty_id, profile_image, created_at, updated_at`
	var faculty models.Faculty
	if err := r.db.GetContext(ctx, &faculty, q, facultyID); err != nil {
		return nil, err
	}
	return &faculty, nil
}

// insertFaculty writes a faculty row within the provisioning transaction.
func insertFaculty(ctx context.Context, ext sqlx.ExtContext, faculty *models.Faculty) error {
	if faculty.ID == "" {
		faculty.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	faculty.CreatedAt = now
	faculty.UpdatedAt = now
	const q = `INSERT INTO faculties (id, faculty_id, name, gender, date_of_birth, email, contact_no,
        emergency_contact_no, present_address, permanent_address, blood_group, designation,
        academic_department_id, academic_faculty_id, profile_image, created_at, updated_at)
        VALUES (:id, :faculty_id, :name, :gender, :date_of_birth, :email, :contact_no,
        :emergency_contact_no, :present_address, :permanent_address, :blood_group, :designation,
        :academic_department_id, :academic_faculty_id, :profile_image, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, ext, q, faculty); err != nil {
		return fmt.Errorf("insert faculty: %w", err)
	}
	return nil
}
