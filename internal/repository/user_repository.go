package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/univista/ums-api/internal/models"
	"github.com/univista/ums-api/pkg/query"
)

const userColumns = `id, role, password_hash, needs_password_change, password_changed_at,
        student_id, faculty_id, admin_id, created_at, updated_at`

var userSortable = map[string]string{
	"id":         "id",
	"role":       "role",
	"created_at": "created_at",
}

// UserRepository manages persistence for authentication records and owns
// the provisioning transactions that create a profile and its user as one
// atomic unit.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns users matching the provided filters plus the unsliced total.
func (r *UserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, int, error) {
	b := query.NewBuilder()
	b.Search(filter.SearchTerm, "id", "role")
	if filter.ID != "" {
		b.Equal("id", filter.ID)
	}
	if filter.Role != nil {
		b.Equal("role", string(*filter.Role))
	}

	slice := filter.Options.Resolve(userSortable, "created_at")

	q := fmt.Sprintf("SELECT %s FROM users%s ORDER BY %s LIMIT %d OFFSET %d",
		userColumns, b.Where(), slice.OrderBy, slice.Limit, slice.Offset)

	var users []models.User
	if err := r.db.SelectContext(ctx, &users, q, b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM users"+b.Where(), b.Args()...); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	return users, total, nil
}

// FindByID fetches a user by its business id.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	q := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)
	var user models.User
	if err := r.db.GetContext(ctx, &user, q, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword stores a new hash and clears the forced-change flag.
func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	now := time.Now().UTC()
	const q = `UPDATE users SET password_hash = $1, needs_password_change = FALSE,
        password_changed_at = $2, updated_at = $2 WHERE id = $3`
	if _, err := r.db.ExecContext(ctx, q, passwordHash, now, id); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ProvisionStudent creates a student profile and its user atomically. The
// business id is prefix plus a zero-padded per-role sequence value claimed
// inside the same transaction, so concurrent requests cannot collide.
func (r *UserRepository) ProvisionStudent(ctx context.Context, student *models.Student, user *models.User, prefix string) error {
	return r.provision(ctx, user, prefix, func(ctx context.Context, tx *sqlx.Tx, id string) error {
		student.StudentID = id
		if err := insertStudent(ctx, tx, student); err != nil {
			return err
		}
		user.StudentID = &student.ID
		return nil
	})
}

// ProvisionFaculty creates a faculty profile and its user atomically.
func (r *UserRepository) ProvisionFaculty(ctx context.Context, faculty *models.Faculty, user *models.User, prefix string) error {
	return r.provision(ctx, user, prefix, func(ctx context.Context, tx *sqlx.Tx, id string) error {
		faculty.FacultyID = id
		if err := insertFaculty(ctx, tx, faculty); err != nil {
			return err
		}
		user.FacultyID = &faculty.ID
		return nil
	})
}

// ProvisionAdmin creates an admin profile and its user atomically.
func (r *UserRepository) ProvisionAdmin(ctx context.Context, admin *models.Admin, user *models.User, prefix string) error {
	return r.provision(ctx, user, prefix, func(ctx context.Context, tx *sqlx.Tx, id string) error {
		admin.AdminID = id
		if err := insertAdmin(ctx, tx, admin); err != nil {
			return err
		}
		user.AdminID = &admin.ID
		return nil
	})
}

func (r *UserRepository) provision(ctx context.Context, user *models.User, prefix string, insertProfile func(context.Context, *sqlx.Tx, string) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin provision: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var seq int64
	if seq, err = nextSequence(ctx, tx, user.Role); err != nil {
		return err
	}
	id := fmt.Sprintf("%s%05d", prefix, seq)

	if err = insertProfile(ctx, tx, id); err != nil {
		return err
	}

	user.ID = id
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	const q = `INSERT INTO users (id, role, password_hash, needs_password_change, password_changed_at,
        student_id, faculty_id, admin_id, created_at, updated_at)
        VALUES (:id, :role, :password_hash, :needs_password_change, :password_changed_at,
        :student_id, :faculty_id, :admin_id, :created_at, :updated_at)`
	if _, err = sqlx.NamedExecContext(ctx, tx, q, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit provision: %w", err)
	}
	return nil
}

// nextSequence advances the per-role counter. The upsert takes a row lock,
// serialising concurrent provisioning for the same role.
func nextSequence(ctx context.Context, tx *sqlx.Tx, role models.UserRole) (int64, error) {
	const q = `INSERT INTO id_sequences (role, value) VALUES ($1, 1)
        ON CONFLICT (role) DO UPDATE SET value = id_sequences.value + 1
        RETURNING value`
	var value int64
	if err := tx.GetContext(ctx, &value, q, string(role)); err != nil {
		return 0, fmt.Errorf("next %s sequence: %w", role, err)
	}
	return value, nil
}
