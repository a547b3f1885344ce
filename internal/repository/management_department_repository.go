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

const managementDepartmentColumns = "id, title, created_at, updated_at"

// ManagementDepartmentRepository manages persistence for management departments.
type ManagementDepartmentRepository struct {
	db *sqlx.DB
}

// NewManagementDepartmentRepository constructs a ManagementDepartmentRepository.
func NewManagementDepartmentRepository(db *sqlx.DB) *ManagementDepartmentRepository {
	return &ManagementDepartmentRepository{db: db}
}

// List returns management departments matching the provided filters.
func (r *ManagementDepartmentRepository) List(ctx context.Context, filter models.ManagementDepartmentFilter) ([]models.ManagementDepartment, int, error) {
	b := query.NewBuilder()
	b.Search(filter.SearchTerm, "title")
	if filter.Title != "" {
		b.Equal("title", filter.Title)
	}

	slice := filter.Options.Resolve(titleSortable, "created_at")

	q := fmt.Sprintf("SELECT %s FROM management_departments%s ORDER BY %s LIMIT %d OFFSET %d",
		managementDepartmentColumns, b.Where(), slice.OrderBy, slice.Limit, slice.Offset)

	var departments []models.ManagementDepartment
	if err := r.db.SelectContext(ctx, &departments, q, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("list management departments: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM management_departments"+b.Where(), b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("count management departments: %w", err)
	}
	return departments, total, nil
}

// FindByID fetches a management department by id.
func (r *ManagementDepartmentRepository) FindByID(ctx context.Context, id string) (*models.ManagementDepartment, error) {
	q := fmt.Sprintf("SELECT %s FROM management_departments WHERE id = $1", managementDepartmentColumns)
	var department models.ManagementDepartment
	if err := r.db.GetContext(ctx, &department, q, id); err != nil {
		return nil, err
	}
	return &department, nil
}

// ExistsByTitle checks title uniqueness, optionally excluding one row.
func (r *ManagementDepartmentRepository) ExistsByTitle(ctx context.Context, title string, excludeID string) (bool, error) {
	return existsByTitle(ctx, r.db, "management_departments", title, excludeID)
}

// Create inserts a new management department.
func (r *ManagementDepartmentRepository) Create(ctx context.Context, department *models.ManagementDepartment) error {
	if department.ID == "" {
		department.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	department.CreatedAt = now
	department.UpdatedAt = now
	const q = `INSERT INTO management_departments (id, title, created_at, updated_at)
        VALUES (:id, :title, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, q, department); err != nil {
		return fmt.Errorf("create management department: %w", err)
	}
	return nil
}

// Update modifies an existing management department.
func (r *ManagementDepartmentRepository) Update(ctx context.Context, department *models.ManagementDepartment) error {
	department.UpdatedAt = time.Now().UTC()
	const q = `UPDATE management_departments SET title = :title, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, q, department); err != nil {
		return fmt.Errorf("update management department: %w", err)
	}
	return nil
}

// Delete removes a management department and returns the removed row.
func (r *ManagementDepartmentRepository) Delete(ctx context.Context, id string) (*models.ManagementDepartment, error) {
	q := fmt.Sprintf("DELETE FROM management_departments WHERE id = $1 RETURNING %s", managementDepartmentColumns)
	var department models.ManagementDepartment
	if err := r.db.GetContext(ctx, &department, q, id); err != nil {
		return nil, err
	}
	return &department, nil
}
