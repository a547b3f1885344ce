package models

import "time"

// Student is the profile record for the student role. StudentID carries the
// human-readable business id shared with the owning user.
type Student struct {
	ID                   string        `db:"id" json:"-"`
	StudentID            string        `db:"student_id" json:"id"`
	Name                 PersonName    `db:"name" json:"name"`
	Gender               string        `db:"gender" json:"gender"`
	DateOfBirth          string        `db:"date_of_birth" json:"dateOfBirth"`
	Email                string        `db:"email" json:"email"`
	ContactNo            string        `db:"contact_no" json:"contactNo"`
	EmergencyContactNo   string        `db:"emergency_contact_no" json:"emergencyContactNo"`
	PresentAddress       string        `db:"present_address" json:"presentAddress"`
	PermanentAddress     string        `db:"permanent_address" json:"permanentAddress"`
	BloodGroup           *string       `db:"blood_group" json:"bloodGroup,omitempty"`
	Guardian             Guardian      `db:"guardian" json:"guardian"`
	LocalGuardian        LocalGuardian `db:"local_guardian" json:"localGuardian"`
	AcademicSemesterID   string        `db:"academic_semester_id" json:"academicSemesterId"`
	AcademicDepartmentID string        `db:"academic_department_id" json:"academicDepartmentId"`
	AcademicFacultyID    string        `db:"academic_faculty_id" json:"academicFacultyId"`
	ProfileImage         *string       `db:"profile_image" json:"profileImage,omitempty"`
	CreatedAt            time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time     `db:"updated_at" json:"updatedAt"`
}

// StudentDetail expands the referenced org units for responses.
type StudentDetail struct {
	Student
	SemesterTitle           *string `db:"semester_title" json:"semesterTitle,omitempty"`
	SemesterYear            *int    `db:"semester_year" json:"semesterYear,omitempty"`
	SemesterCode            *string `db:"semester_code" json:"semesterCode,omitempty"`
	AcademicDepartmentTitle *string `db:"academic_department_title" json:"academicDepartmentTitle,omitempty"`
	AcademicFacultyTitle    *string `db:"academic_faculty_title" json:"academicFacultyTitle,omitempty"`
}

// StudentFilter captures allowed list parameters for students.
type StudentFilter struct {
	SearchTerm         string
	ID                 string
	Email              string
	ContactNo          string
	EmergencyContactNo string
	BloodGroup         string
	Options            ListOptions
}
