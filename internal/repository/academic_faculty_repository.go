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

const academicFacultyColumns = "id, title, created_at, updated_at"

var titleSortable = map[string]string{
	"title":      "title",
	"created_at": "created_at",
}

// AcademicFacultyRepository manages persistence for academic faculties.
type AcademicFacultyRepository struct {
	db *sqlx.DB
}

// NewAcademicFacultyRepository constructs an AcademicFacultyRepository.
func NewAcademicFacultyRepository(db *sqlx.DB) *AcademicFacultyRepository {
	return &AcademicFacultyRepository{db: db}
}

// List returns academic faculties matching the provided filters.
func (r *AcademicFacultyRepository) List(ctx context.Context, filter models.AcademicFacultyFilter) ([]models.AcademicFaculty, int, error) {
	b := query.NewBuilder()
	b.Search(filter.SearchTerm, "title")
	if filter.Title != "" {
		b.Equal("title", filter.Title)
	}

	slice := filter.Options.Resolve(titleSortable, "created_at")

	q := fmt.Sprintf("SELECT %s FROM academic_faculties%s ORDER BY %s LIMIT %d OFFSET %d",
		academicFacultyColumns, b.Where(), slice.OrderBy, slice.Limit, slice.Offset)

	var faculties []models.AcademicFaculty
	if err := r.db.SelectContext(ctx, &faculties, q, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("list academic faculties: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM academic_faculties"+b.Where(), b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("count academic faculties: %w", err)
	}
	return faculties, total, nil
}

// FindByID fetches an academic faculty by id.
func (r *AcademicFacultyRepository) FindByID(ctx context.Context, id string) (*models.AcademicFaculty, error) {
	q := fmt.Sprintf("SELECT %s FROM academic_faculties WHERE id = $1", academicFacultyColumns)
	var faculty models.AcademicFaculty
	if err := r.db.GetContext(ctx, &faculty, q, id); err != nil {
		return nil, err
	}
	return &faculty, nil
}

// ExistsByTitle checks title uniqueness, optionally excluding one row.
func (r *AcademicFacultyRepository) ExistsByTitle(ctx context.Context, title string, excludeID string) (bool, error) {
	return existsByTitle(ctx, r.db, "academic_faculties", title, excludeID)
}

// Create inserts a new academic faculty.
func (r *AcademicFacultyRepository) Create(ctx context.Context, faculty *models.AcademicFaculty) error {
	if faculty.ID == "" {
		faculty.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	faculty.CreatedAt = now
	faculty.UpdatedAt = now
	const q = `INSERT INTO academic_faculties (id, title, created_at, updated_at)
        VALUES (:id, :title, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, q, faculty); err != nil {
		return fmt.Errorf("create academic faculty: %w", err)
	}
	return nil
}

// Update modifies an existing academic faculty.
func (r *AcademicFacultyRepository) Update(ctx context.Context, faculty *models.AcademicFaculty) error {
	faculty.UpdatedAt = time.Now().UTC()
	const q = `UPDATE academic_faculties SET title = :title, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, q, faculty); err != nil {
		return fmt.Errorf("update academic faculty: %w", err)
	}
	return nil
}

// Delete removes an academic faculty and returns the removed row.
func (r *AcademicFacultyRepository) Delete(ctx context.Context, id string) (*models.AcademicFaculty, error) {
	q := fmt.Sprintf("DELETE FROM academic_faculties WHERE id = $1 RETURNING %s", academicFacultyColumns)
	var faculty models.AcademicFaculty
	if err := r.db.GetContext(ctx, &faculty, q, id); err != nil {
		return nil, err
	}
	return &faculty, nil
}

// existsByTitle is shared by the org-unit repositories that enforce a unique
// title column.
func existsByTitle(ctx context.Context, db *sqlx.DB, table, title, excludeID string) (bool, error) {
	q := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE title = $1", table)
	args := []interface{}{title}
	if excludeID != "" {
		q += " AND id <> $2"
		args = append(args, excludeID)
	}
	q += ")"
	var exists bool
	if err := db.GetContext(ctx, &exists, q, args...); err != nil {
		return false, fmt.Errorf("check %s title: %w", table, err)
	}
	return exists, nil
}
