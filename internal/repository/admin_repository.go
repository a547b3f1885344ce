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

const adminColumns = `a.id, a.admin_id, a.name, a.gender, a.date_of_birth, a.email, a.contact_no,
        a.emergency_contact_no, a.present_address, a.permanent_address, a.blood_group, a.designation,
        a.management_department_id, a.profile_image, a.created_at, a.updated_at,
        m.title AS management_department_title`

const adminJoins = `FROM admins a
        LEFT JOIN management_departments m ON m.id = a.management_department_id`

var adminSortable = map[string]string{
	"id":          "a.admin_id",
	"email":       "a.email",
	"designation": "a.designation",
	"created_at":  "a.created_at",
}

// AdminRepository manages persistence for admin profiles.
type AdminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository constructs an AdminRepository.
func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// List returns admins with the management department expanded.
func (r *AdminRepository) List(ctx context.Context, filter models.AdminFilter) ([]models.AdminDetail, int, error) {
	b := query.NewBuilder()
	b.Search(filter.SearchTerm,
		"a.admin_id", "a.email", "a.contact_no", "a.designation",
		"a.name->>'firstName'", "a.name->>'middleName'", "a.name->>'lastName'")
	if filter.ID != "" {
		b.Equal("a.admin_id", filter.ID)
	}
	if filter.Email != "" {
		b.Equal("a.email", filter.Email)
	}
	if filter.ContactNo != "" {
		b.Equal("a.contact_no", filter.ContactNo)
	}
	if filter.EmergencyContactNo != "" {
		b.Equal("a.emergency_contact_no", filter.EmergencyContactNo)
	}
	if filter.BloodGroup != "" {
		b.Equal("a.blood_group", filter.BloodGroup)
	}
	if filter.Designation != "" {
		b.Equal("a.designation", filter.Designation)
	}

	slice := filter.Options.Resolve(adminSortable, "a.created_at")

	base := adminJoins + b.Where()
	q := fmt.Sprintf("SELECT %s %s ORDER BY %s LIMIT %d OFFSET %d",
		adminColumns, base, slice.OrderBy, slice.Limit, slice.Offset)

	var admins []models.AdminDetail
	if err := r.db.SelectContext(ctx, &admins, q, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("list admins: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) "+base, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("count admins: %w", err)
	}
	return admins, total, nil
}

// FindByBusinessID fetches an admin by its human-readable id.
func (r *AdminRepository) FindByBusinessID(ctx context.Context, adminID string) (*models.AdminDetail, error) {
	q := fmt.Sprintf("SELECT %s %s WHERE a.admin_id = $1", adminColumns, adminJoins)
	var detail models.AdminDetail
	if err := r.db.GetContext(ctx, &detail, q, adminID); err != nil {
		return nil, err
	}
	return &detail, nil
}

// FindByID fetches an admin by its surrogate key.
func (r *AdminRepository) FindByID(ctx context.Context, id string) (*models.AdminDetail, error) {
	q := fmt.Sprintf("SELECT %s %s WHERE a.id = $1", adminColumns, adminJoins)
	var detail models.AdminDetail
	if err := r.db.GetContext(ctx, &detail, q, id); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Update writes the full admin row identified by business id.
func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	admin.UpdatedAt = time.Now().UTC()
	const q = `UPDATE admins SET name = :name, gender = :gender, date_of_birth = :date_of_birth,
        email = :email, contact_no = :contact_no, emergency_contact_no = :emergency_contact_no,
        present_address = :present_address, permanent_address = :permanent_address,
        blood_group = :blood_group, designation = :designation,
        management_department_id = :management_department_id, profile_image = :profile_image,
        updated_at = :updated_at WHERE admin_id = :admin_id`
	if _, err := r.db.NamedExecContext(ctx, q, admin); err != nil {
		return fmt.Errorf("update admin: %w", err)
	}
	return nil
}

// Delete removes an admin by business id and returns the removed row.
func (r *AdminRepository) Delete(ctx context.Context, adminID string) (*models.Admin, error) {
	const q = `DELETE FROM admins WHERE admin_id = $1
        RETURNING id, admin_id, name, gender, date_of_birth, email, contact_no,
        emergency_contact_no, present_address, permanent_address, blood_group, designation,
        management_department_id, profile_image, created_at, updated_at`
	var admin models.Admin
	if err := r.db.GetContext(ctx, &admin, q, adminID); err != nil {
		return nil, err
	}
	return &admin, nil
}

// insertAdmin writes an admin row within the provisioning transaction.
func insertAdmin(ctx context.Context, ext sqlx.ExtContext, admin *models.Admin) error {
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	admin.CreatedAt = now
	admin.UpdatedAt = now
	const q = `INSERT INTO admins (id, admin_id, name, gender, date_of_birth, email, contact_no,
        emergency_contact_no, present_address, permanent_address, blood_group, designation,
        management_department_id, profile_image, created_at, updated_at)
        VALUES (:id, :admin_id, :name, :gender, :date_of_birth, :email, :contact_no,
        :emergency_contact_no, :present_address, :permanent_address, :blood_group, :designation,
        :management_department_id, :profile_image, :created_at, :updated_at)`
	if _, err := sqlx.NamedExecContext(ctx, ext, q, admin); err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}
