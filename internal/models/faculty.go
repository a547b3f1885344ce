package models

import "time"

// Faculty is the profile record for the faculty (teaching staff) role.
type Faculty struct {
	ID                   string     `db:"id" json:"-"`
	FacultyID            string     `db:"faculty_id" json:"id"`
	Name                 PersonName `db:"name" json:"name"`
	Gender               string     `db:"gender" json:"gender"`
	DateOfBirth          string     `db:"date_of_birth" json:"dateOfBirth"`
	Email                string     `db:"email" json:"email"`
	ContactNo            string     `db:"contact_no" json:"contactNo"`
	EmergencyContactNo   string     `db:"emergency_contact_no" json:"emergencyContactNo"`
	PresentAddress       string     `db:"present_address" json:"presentAddress"`
	PermanentAddress     string     `db:"permanent_address" json:"permanentAddress"`
	BloodGroup           *string    `db:"blood_group" json:"bloodGroup,omitempty"`
	Designation          string     `db:"designation" json:"designation"`
	AcademicDepartmentID string     `db:"academic_department_id" json:"academicDepartmentId"`
	AcademicFacultyID    string     `db:"academic_faculty_id" json:"academicFacultyId"`
	ProfileImage         *string    `db:"profile_image" json:"profileImage,omitempty"`
	CreatedAt            time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time  `db:"updated_at" json:"updatedAt"`
}

// FacultyDetail expands the referenced org units for responses.
type FacultyDetail struct {
	Faculty
	AcademicDepartmentTitle *string `db:"academic_department_title" json:"academicDepartmentTitle,omitempty"`
	AcademicFacultyTitle    *string `db:"academic_faculty_title" json:"academicFacultyTitle,omitempty"`
}

// FacultyFilter captures allowed list parameters for faculties.
type FacultyFilter struct {
	SearchTerm         string
	ID                 string
	Email              string
	ContactNo          string
	EmergencyContactNo string
	BloodGroup         string
	Designation        string
	Options            ListOptions
}
