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

const studentColumns = `s.id, s.student_id, s.name, s.gender, s.date_of_birth, s.email, s.contact_no,
        s.emergency_contact_no, s.present_address, s.permanent_address, s.blood_group, s.guardian,
        s.local_guardian, s.academic_semester_id, s.academic_department_id, s.academic_faculty_id,
        s.profile_image, s.created_at, s.updated_at,
        sem.title AS semester_title, sem.year AS semester_year, sem.code AS semester_code,
        d.title AS academic_department_title, f.title AS academic_faculty_title`

const studentJoins = `FROM students s
        LEFT JOIN academic_semesters sem ON sem.id = s.academic_semester_id
        LEFT JOIN academic_departments d ON d.id = s.academic_department_id
        LEFT JOIN academic_faculties f ON f.id = s.academic_faculty_id`

var studentSortable = map[string]string{
	"id":         "s.student_id",
	"email":      "s.email",
	"created_at": "s.created_at",
}

// StudentRepository manages persistence for student profiles.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns students with their org units expanded.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, int, error) {
	b := query.NewBuilder()
	b.Search(filter.SearchTerm,
		"s.student_id", "s.email", "s.contact_no",
		"s.name->>'firstName'", "s.name->>'middleName'", "s.name->>'lastName'")
	if filter.ID != "" {
		b.Equal("s.student_id", filter.ID)
	}
	if filter.Email != "" {
		b.Equal("s.email", filter.Email)
	}
	if filter.ContactNo != "" {
		b.Equal("s.contact_no", filter.ContactNo)
	}
	if filter.EmergencyContactNo != "" {
		b.Equal("s.emergency_contact_no", filter.EmergencyContactNo)
	}
	if filter.BloodGroup != "" {
		b.Equal("s.blood_group", filter.BloodGroup)
	}

	slice := filter.Options.Resolve(studentSortable, "s.created_at")

	base := studentJoins + b.Where()
	q := fmt.Sprintf("SELECT %s %s ORDER BY %s LIMIT %d OFFSET %d",
		studentColumns, base, slice.OrderBy, slice.Limit, slice.Offset)

	var students []models.StudentDetail
	if err := r.db.SelectContext(ctx, &students, q, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("list students: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) "+base, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}
	return students, total, nil
}

// FindByBusinessID fetches a student by its human-readable id.
func (r *StudentRepository) FindByBusinessID(ctx context.Context, studentID string) (*models.StudentDetail, error) {
	q := fmt.Sprintf("SELECT %s %s WHERE s.student_id = $1", studentColumns, studentJoins)
	var detail models.StudentDetail
	if err := r.db.GetContext(ctx, &detail, q, studentID); err != nil {
		return nil, err
	}
	return &detail, nil
}

// FindByID fetches a student by its surrogate key.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.StudentDetail, error) {
	q := fmt.Sprintf("SELECT %s %s WHERE s.id = $1", studentColumns, studentJoins)
	var detail models.StudentDetail
	if err := r.db.GetContext(ctx, &detail, q, id); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Update writes the full student row identified by business id.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	student.UpdatedAt = time.Now().UTC()
	const q = `UPDATE students SET name = :name, gender = :gender, date_of_birth = :date_of_birth,
        email = :email, contact_no = :contact_no, emergency_contact_no = :emergency_contact_no,
        present_address = :present_address, permanent_address = :permanent_address,
        blood_group = :blood_group, guardian = :guardian, local_guardian = :local_guardian,
        academic_semester_id = :academic_semester_id, academic_department_id = :academic_department_id,
        academic_faculty_id = :academic_faculty_id, profile_image = :profile_image,
        updated_at = :updated_at WHERE student_id = :student_id`
	if _, err := r.db.NamedExecContext(ctx, q, student); err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

// Delete removes a student by business id and returns the removed row. The
// linked user record is intentionally left in place.
func (r *StudentRepository) Delete(ctx context.Context, studentID string) (*models.Student, error) {
	const q = `DELETE FROM students WHERE student_id = $1
        RETURNING id, student_id, name, gender, date_of_birth, email, contact_no,
        emergency_contact_no, present_address, permanent_address, blood_group, guardian,
        local_guardian, academic_semester_id, academic_department_id, academic_faculty_id,
        profile_image, created_at, updated_at`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, q, studentID); err != nil {
		return nil, err
	}
	return &student, nil
}

// insertStudent writes a student row within the provisioning transaction.
func insertStudent(ctx context.Context, ext sqlx.ExtContext, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	student.CreatedAt = now
	student.UpdatedAt = now
	const q = `INSERT INTO students (id, student_id, name, gender, date_of_birth, email, contact_no,
        emergency_contact_no, present_address, permanent_address, blood_group, guardian, local_guardian,
        academic_semester_id, academic_department_id, academic_faculty_id, profile_image, created_at, updated_at)
        VALUES (:id, :student_id, :name, :gender, :date_of_birth, :email, :contact_no,
        :emergency_contact_no, :present_address, :permanent_address, :blood_group, :guardian, :local_guardian,
        :academic_semester_id, :academic_department_id, :academic_faculty_id, :profile_image, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, ext, q, student); err != nil {
		return fmt.Errorf("insert student: %w", err)
	}
	return nil
}
