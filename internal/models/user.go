package models

import (
	"time"

	"github.com/univista/ums-api/pkg/query"
)

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleAdmin      UserRole = "admin"
	RoleFaculty    UserRole = "faculty"
	RoleStudent    UserRole = "student"
)

// User represents an authentication record linked 1:1 to a role profile.
// The ID column holds the human-readable business id (e.g. F-00001); the
// profile references point at the surrogate key of the owning profile row,
// of which exactly one is set, matching Role.
type User struct {
	ID                  string     `db:"id" json:"id"`
	Role                UserRole   `db:"role" json:"role"`
	PasswordHash        string     `db:"password_hash" json:"-"`
	NeedsPasswordChange bool       `db:"needs_password_change" json:"needsPasswordChange"`
	PasswordChangedAt   *time.Time `db:"password_changed_at" json:"passwordChangedAt,omitempty"`
	StudentID           *string    `db:"student_id" json:"-"`
	FacultyID           *string    `db:"faculty_id" json:"-"`
	AdminID             *string    `db:"admin_id" json:"-"`
	CreatedAt           time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updatedAt"`
}

// UserDetail is a user with its profile record expanded for responses.
type UserDetail struct {
	User
	Student *StudentDetail `json:"student,omitempty"`
	Faculty *FacultyDetail `json:"faculty,omitempty"`
	Admin   *AdminDetail   `json:"admin,omitempty"`
}

// UserFilter captures filtering criteria for listing users.
type UserFilter struct {
	SearchTerm string
	ID         string
	Role       *UserRole
	Options    ListOptions
}

// ListOptions mirrors pagination query parameters on filter structs.
type ListOptions = query.Options
