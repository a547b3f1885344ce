package models

import "time"

// Admin is the profile record for the admin role.
type Admin struct {
	ID                     string     `db:"id" json:"-"`
	AdminID                string     `db:"admin_id" json:"id"`
	Name                   PersonName `db:"name" json:"name"`
	Gender                 string     `db:"gender" json:"gender"`
	DateOfBirth            string     `db:"date_of_birth" json:"dateOfBirth"`
	Email                  string     `db:"email" json:"email"`
	ContactNo              string     `db:"contact_no" json:"contactNo"`
	EmergencyContactNo     string     `db:"emergency_contact_no" json:"emergencyContactNo"`
	PresentAddress         string     `db:"present_address" json:"presentAddress"`
	PermanentAddress       string     `db:"permanent_address" json:"permanentAddress"`
	BloodGroup             *string    `db:"blood_group" json:"bloodGroup,omitempty"`
	Designation            string     `db:"designation" json:"designation"`
	ManagementDepartmentID string     `db:"management_department_id" json:"managementDepartmentId"`
	ProfileImage           *string    `db:"profile_image" json:"profileImage,omitempty"`
	CreatedAt              time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt              time.Time  `db:"updated_at" json:"updatedAt"`
}

// AdminDetail expands the management department for responses.
type AdminDetail struct {
	Admin
	ManagementDepartmentTitle *string `db:"management_department_title" json:"managementDepartmentTitle,omitempty"`
}

// AdminFilter captures allowed list parameters for admins.
type AdminFilter struct {
	SearchTerm         string
	ID                 string
	Email              string
	ContactNo          string
	EmergencyContactNo string
	BloodGroup         string
	Designation        string
	Options            ListOptions
}
