package models

import "time"

// AcademicFaculty is a top-level academic org unit.
type AcademicFaculty struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// AcademicFacultyFilter defines list filters for academic faculties.
type AcademicFacultyFilter struct {
	SearchTerm string
	Title      string
	Options    ListOptions
}

// AcademicDepartment belongs to an AcademicFaculty.
type AcademicDepartment struct {
	ID                string    `db:"id" json:"id"`
	Title             string    `db:"title" json:"title"`
	AcademicFacultyID string    `db:"academic_faculty_id" json:"academicFacultyId"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}

// AcademicDepartmentDetail joins the parent faculty title for responses.
type AcademicDepartmentDetail struct {
	AcademicDepartment
	AcademicFacultyTitle *string `db:"academic_faculty_title" json:"academicFacultyTitle,omitempty"`
}

// AcademicDepartmentFilter defines list filters for academic departments.
type AcademicDepartmentFilter struct {
	SearchTerm        string
	Title             string
	AcademicFacultyID string
	Options           ListOptions
}

// ManagementDepartment is an administrative org unit for admins.
type ManagementDepartment struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// ManagementDepartmentFilter defines list filters for management departments.
type ManagementDepartmentFilter struct {
	SearchTerm string
	Title      string
	Options    ListOptions
}
