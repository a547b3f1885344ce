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

const semesterColumns = "id, title, year, code, start_month, end_month, created_at, updated_at"

var semesterSortable = map[string]string{
	"title":      "title",
	"year":       "year",
	"code":       "code",
	"created_at": "created_at",
}

// AcademicSemesterRepository manages persistence for academic semesters.
type AcademicSemesterRepository struct {
	db *sqlx.DB
}

// NewAcademicSemesterRepository constructs an AcademicSemesterRepository.
func NewAcademicSemesterRepository(db *sqlx.DB) *AcademicSemesterRepository {
	return &AcademicSemesterRepository{db: db}
}

// List returns semesters matching the provided filters plus the unsliced total.
func (r *AcademicSemesterRepository) List(ctx context.Context, filter models.AcademicSemesterFilter) ([]models.AcademicSemester, int, error) {
	b := query.NewBuilder()
	b.Search(filter.SearchTerm, "title", "code", "year::text")
	if filter.Title != "" {
		b.Equal("title", filter.Title)
	}
	if filter.Code != "" {
		b.Equal("code", filter.Code)
	}
	if filter.Year != nil {
		b.Equal("year", *filter.Year)
	}

	slice := filter.Options.Resolve(semesterSortable, "created_at")

	q := fmt.Sprintf("SELECT %s FROM academic_semesters%s ORDER BY %s LIMIT %d OFFSET %d",
		semesterColumns, b.Where(), slice.OrderBy, slice.Limit, slice.Offset)

	var semesters []models.AcademicSemester
	if err := r.db.SelectContext(ctx, &semesters, q, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("list semesters: %w", err)
	}

	countQuery := "SELECT COUNT(*) FROM academic_semesters" + b.Where()
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("count semesters: %w", err)
	}
	return semesters, total, nil
}

// FindByID fetches a semester by its surrogate id.
func (r *AcademicSemesterRepository) FindByID(ctx context.Context, id string) (*models.AcademicSemester, error) {
	q := fmt.Sprintf("SELECT %s FROM academic_semesters WHERE id = $1", semesterColumns)
	var semester models.AcademicSemester
	if err := r.db.GetContext(ctx, &semester, q, id); err != nil {
		return nil, err
	}
	return &semester, nil
}

// ExistsByTitleAndYear checks the (title, year) uniqueness constraint,
// optionally excluding one row.
func (r *AcademicSemesterRepository) ExistsByTitleAndYear(ctx context.Context, title string, year int, excludeID string) (bool, error) {
	q := "SELECT EXISTS (SELECT 1 FROM academic_semesters WHERE title = $1 AND year = $2"
	args := []interface{}{title, year}
	if excludeID != "" {
		q += " AND id <> $3"
		args = append(args, excludeID)
	}
	q += ")"
	var exists bool
	if err := r.db.GetContext(ctx, &exists, q, args...); err != nil {
		return false, fmt.Errorf("check semester title/year: %w", err)
	}
	return exists, nil
}

// Create inserts a new semester record.
func (r *AcademicSemesterRepository) Create(ctx context.Context, semester *models.AcademicSemester) error {
	if semester.ID == "" {
		semester.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	semester.CreatedAt = now
	semester.UpdatedAt = now
	const q = `INSERT INTO academic_semesters (id, title, year, code, start_month, end_month, created_at, updated_at)
        VALUES (:id, :title, :year, :code, :start_month, :end_month, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, q, semester); err != nil {
		return fmt.Errorf("create semester: %w", err)
	}
	return nil
}

// Update modifies an existing semester.
func (r *AcademicSemesterRepository) Update(ctx context.Context, semester *models.AcademicSemester) error {
	semester.UpdatedAt = time.Now().UTC()
	const q = `UPDATE academic_semesters SET title = :title, year = :year, code = :code,
        start_month = :start_month, end_month = :end_month, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, q, semester); err != nil {
		return fmt.Errorf("update semester: %w", err)
	}
	return nil
}

// Delete removes a semester and returns the removed row.
func (r *AcademicSemesterRepository) Delete(ctx context.Context, id string) (*models.AcademicSemester, error) {
	q := fmt.Sprintf("DELETE FROM academic_semesters WHERE id = $1 RETURNING %s", semesterColumns)
	var semester models.AcademicSemester
	if err := r.db.GetContext(ctx, &semester, q, id); err != nil {
		return nil, err
	}
	return &semester, nil
}
