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

const academicDepartmentColumns = `d.id, d.title, d.academic_faculty_id, d.created_at, d.updated_at,
        f.title AS academic_faculty_title`

var academicDepartmentSortable = map[string]string{
	"title":      "d.title",
	"created_at": "d.created_at",
}

// AcademicDepartmentRepository manages persistence for academic departments.
type AcademicDepartmentRepository struct {
	db *sqlx.DB
}

// NewAcademicDepartmentRepository constructs an AcademicDepartmentRepository.
func NewAcademicDepartmentRepository(db *sqlx.DB) *AcademicDepartmentRepository {
	return &AcademicDepartmentRepository{db: db}
}

// List returns departments with the parent faculty title joined in.
func (r *AcademicDepartmentRepository) List(ctx context.Context, filter models.AcademicDepartmentFilter) ([]models.AcademicDepartmentDetail, int, error) {
	b := query.NewBuilder()
	b.Search(filter.SearchTerm, "d.title")
	if filter.Title != "" {
		b.Equal("d.title", filter.Title)
	}
	if filter.AcademicFacultyID != "" {
		b.Equal("d.academic_faculty_id", filter.AcademicFacultyID)
	}

	slice := filter.Options.Resolve(academicDepartmentSortable, "d.created_at")

	base := "FROM academic_departments d LEFT JOIN academic_faculties f ON f.id = d.academic_faculty_id" + b.Where()
	q := fmt.Sprintf("SELECT %s %s ORDER BY %s LIMIT %d OFFSET %d",
		academicDepartmentColumns, base, slice.OrderBy, slice.Limit, slice.Offset)

	var departments []models.AcademicDepartmentDetail
	if err := r.db.SelectContext(ctx, &departments, q, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("list academic departments: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) "+base, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("count academic departments: %w", err)
	}
	return departments, total, nil
}

// FindByID fetches a department by id with the faculty title joined in.
func (r *AcademicDepartmentRepository) FindByID(ctx context.Context, id string) (*models.AcademicDepartmentDetail, error) {
	q := fmt.Sprintf(`SELECT %s FROM academic_departments d
        LEFT JOIN academic_faculties f ON f.id = d.academic_faculty_id
        WHERE d.id = $1`, academicDepartmentColumns)
	var department models.AcademicDepartmentDetail
	if err := r.db.GetContext(ctx, &department, q, id); err != nil {
		return nil, err
	}
	return &department, nil
}

// ExistsByTitle checks title uniqueness, optionally excluding one row.
func (r *AcademicDepartmentRepository) ExistsByTitle(ctx context.Context, title string, excludeID string) (bool, error) {
	return existsByTitle(ctx, r.db, "academic_departments", title, excludeID)
}

// Create inserts a new department.
func (r *AcademicDepartmentRepository) Create(ctx context.Context, department *models.AcademicDepartment) error {
	if department.ID == "" {
		department.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	department.CreatedAt = now
	department.UpdatedAt = now
	const q = `INSERT INTO academic_departments (id, title, academic_faculty_id, created_at, updated_at)
        VALUES (:id, :title, :academic_faculty_id, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, q, department); err != nil {
		return fmt.Errorf("create academic department: %w", err)
	}
	return nil
}

// Update modifies an existing department.
func (r *AcademicDepartmentRepository) Update(ctx context.Context, department *models.AcademicDepartment) error {
	department.UpdatedAt = time.Now().UTC()
	const q = `UPDATE academic_departments SET title = :title, academic_faculty_id = :academic_faculty_id,
        updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, q, department); err != nil {
		return fmt.Errorf("update academic department: %w", err)
	}
	return nil
}

// Delete removes a department and returns the removed row.
func (r *AcademicDepartmentRepository) Delete(ctx context.Context, id string) (*models.AcademicDepartment, error) {
	const q = `DELETE FROM academic_departments WHERE id = $1
        RETURNING id, title, academic_faculty_id, created_at, updated_at`
	var department models.AcademicDepartment
	if err := r.db.GetContext(ctx, &department, q, id); err != nil {
		return nil, err
	}
	return &department, nil
}
