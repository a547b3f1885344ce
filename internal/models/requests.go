package models

// AcademicSemesterCreateRequest is the payload for creating a semester.
type AcademicSemesterCreateRequest struct {
	Title      string `json:"title" validate:"required,oneof=Autumn Summer Fall"`
	Year       int    `json:"year" validate:"required"`
	Code       string `json:"code" validate:"required,oneof=01 02 03"`
	StartMonth string `json:"startMonth" validate:"required"`
	EndMonth   string `json:"endMonth" validate:"required"`
}

// AcademicSemesterUpdateRequest carries a partial semester update. Title and
// code must be changed together so the pairing stays consistent.
type AcademicSemesterUpdateRequest struct {
	Title      *string `json:"title" validate:"omitempty,oneof=Autumn Summer Fall"`
	Year       *int    `json:"year"`
	Code       *string `json:"code" validate:"omitempty,oneof=01 02 03"`
	StartMonth *string `json:"startMonth"`
	EndMonth   *string `json:"endMonth"`
}

// TitleCreateRequest is the payload for creating title-only org units.
type TitleCreateRequest struct {
	Title string `json:"title" validate:"required"`
}

// TitleUpdateRequest carries a partial update for title-only org units.
type TitleUpdateRequest struct {
	Title *string `json:"title"`
}

// AcademicDepartmentCreateRequest is the payload for creating a department.
type AcademicDepartmentCreateRequest struct {
	Title             string `json:"title" validate:"required"`
	AcademicFacultyID string `json:"academicFacultyId" validate:"required,uuid"`
}

// AcademicDepartmentUpdateRequest carries a partial department update.
type AcademicDepartmentUpdateRequest struct {
	Title             *string `json:"title"`
	AcademicFacultyID *string `json:"academicFacultyId" validate:"omitempty,uuid"`
}

// PersonNameUpdate carries a partial name update. Omitted fields keep their
// stored values.
type PersonNameUpdate struct {
	FirstName  *string `json:"firstName"`
	MiddleName *string `json:"middleName"`
	LastName   *string `json:"lastName"`
}

// GuardianUpdate carries a partial guardian update.
type GuardianUpdate struct {
	FatherName       *string `json:"fatherName"`
	FatherOccupation *string `json:"fatherOccupation"`
	FatherContactNo  *string `json:"fatherContactNo"`
	MotherName       *string `json:"motherName"`
	MotherOccupation *string `json:"motherOccupation"`
	MotherContactNo  *string `json:"motherContactNo"`
	Address          *string `json:"address"`
}

// LocalGuardianUpdate carries a partial local guardian update.
type LocalGuardianUpdate struct {
	Name       *string `json:"name"`
	Occupation *string `json:"occupation"`
	ContactNo  *string `json:"contactNo"`
	Address    *string `json:"address"`
}

// StudentCreate is the profile portion of the create-student payload.
type StudentCreate struct {
	Name                 PersonName    `json:"name" validate:"required"`
	Gender               string        `json:"gender" validate:"required,oneof=male female other"`
	DateOfBirth          string        `json:"dateOfBirth" validate:"required"`
	Email                string        `json:"email" validate:"required,email"`
	ContactNo            string        `json:"contactNo" validate:"required"`
	EmergencyContactNo   string        `json:"emergencyContactNo" validate:"required"`
	PresentAddress       string        `json:"presentAddress" validate:"required"`
	PermanentAddress     string        `json:"permanentAddress" validate:"required"`
	BloodGroup           *string       `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Guardian             Guardian      `json:"guardian" validate:"required"`
	LocalGuardian        LocalGuardian `json:"localGuardian" validate:"required"`
	AcademicSemesterID   string        `json:"academicSemesterId" validate:"required,uuid"`
	AcademicDepartmentID string        `json:"academicDepartmentId" validate:"required,uuid"`
	AcademicFacultyID    string        `json:"academicFacultyId" validate:"required,uuid"`
	ProfileImage         *string       `json:"profileImage"`
}

// CreateStudentRequest provisions a student profile plus its user. When the
// password is omitted the configured default student password is used.
type CreateStudentRequest struct {
	Password string        `json:"password"`
	Student  StudentCreate `json:"student" validate:"required"`
}

// StudentUpdate carries a partial student update with nested partials.
type StudentUpdate struct {
	Name                 *PersonNameUpdate    `json:"name"`
	Gender               *string              `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth          *string              `json:"dateOfBirth"`
	Email                *string              `json:"email" validate:"omitempty,email"`
	ContactNo            *string              `json:"contactNo"`
	EmergencyContactNo   *string              `json:"emergencyContactNo"`
	PresentAddress       *string              `json:"presentAddress"`
	PermanentAddress     *string              `json:"permanentAddress"`
	BloodGroup           *string              `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Guardian             *GuardianUpdate      `json:"guardian"`
	LocalGuardian        *LocalGuardianUpdate `json:"localGuardian"`
	AcademicSemesterID   *string              `json:"academicSemesterId" validate:"omitempty,uuid"`
	AcademicDepartmentID *string              `json:"academicDepartmentId" validate:"omitempty,uuid"`
	AcademicFacultyID    *string              `json:"academicFacultyId" validate:"omitempty,uuid"`
	ProfileImage         *string              `json:"profileImage"`
}

// FacultyCreate is the profile portion of the create-faculty payload.
type FacultyCreate struct {
	Name                 PersonName `json:"name" validate:"required"`
	Gender               string     `json:"gender" validate:"required,oneof=male female other"`
	DateOfBirth          string     `json:"dateOfBirth" validate:"required"`
	Email                string     `json:"email" validate:"required,email"`
	ContactNo            string     `json:"contactNo" validate:"required"`
	EmergencyContactNo   string     `json:"emergencyContactNo" validate:"required"`
	PresentAddress       string     `json:"presentAddress" validate:"required"`
	PermanentAddress     string     `json:"permanentAddress" validate:"required"`
	BloodGroup           *string    `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Designation          string     `json:"designation" validate:"required"`
	AcademicDepartmentID string     `json:"academicDepartmentId" validate:"required,uuid"`
	AcademicFacultyID    string     `json:"academicFacultyId" validate:"required,uuid"`
	ProfileImage         *string    `json:"profileImage"`
}

// CreateFacultyRequest provisions a faculty profile plus its user.
type CreateFacultyRequest struct {
	Password string        `json:"password"`
	Faculty  FacultyCreate `json:"faculty" validate:"required"`
}

// FacultyUpdate carries a partial faculty update with nested partials.
type FacultyUpdate struct {
	Name                 *PersonNameUpdate `json:"name"`
	Gender               *string           `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth          *string           `json:"dateOfBirth"`
	Email                *string           `json:"email" validate:"omitempty,email"`
	ContactNo            *string           `json:"contactNo"`
	EmergencyContactNo   *string           `json:"emergencyContactNo"`
	PresentAddress       *string           `json:"presentAddress"`
	PermanentAddress     *string           `json:"permanentAddress"`
	BloodGroup           *string           `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Designation          *string           `json:"designation"`
	AcademicDepartmentID *string           `json:"academicDepartmentId" validate:"omitempty,uuid"`
	AcademicFacultyID    *string           `json:"academicFacultyId" validate:"omitempty,uuid"`
	ProfileImage         *string           `json:"profileImage"`
}

// AdminCreate is the profile portion of the create-admin payload.
type AdminCreate struct {
	Name                   PersonName `json:"name" validate:"required"`
	Gender                 string     `json:"gender" validate:"required,oneof=male female other"`
	DateOfBirth            string     `json:"dateOfBirth" validate:"required"`
	Email                  string     `json:"email" validate:"required,email"`
	ContactNo              string     `json:"contactNo" validate:"required"`
	EmergencyContactNo     string     `json:"emergencyContactNo" validate:"required"`
	PresentAddress         string     `json:"presentAddress" validate:"required"`
	PermanentAddress       string     `json:"permanentAddress" validate:"required"`
	BloodGroup             *string    `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Designation            string     `json:"designation" validate:"required"`
	ManagementDepartmentID string     `json:"managementDepartmentId" validate:"required,uuid"`
	ProfileImage           *string    `json:"profileImage"`
}

// CreateAdminRequest provisions an admin profile plus its user.
type CreateAdminRequest struct {
	Password string      `json:"password"`
	Admin    AdminCreate `json:"admin" validate:"required"`
}

// AdminUpdate carries a partial admin update with nested partials.
type AdminUpdate struct {
	Name                   *PersonNameUpdate `json:"name"`
	Gender                 *string           `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth            *string           `json:"dateOfBirth"`
	Email                  *string           `json:"email" validate:"omitempty,email"`
	ContactNo              *string           `json:"contactNo"`
	EmergencyContactNo     *string           `json:"emergencyContactNo"`
	PresentAddress         *string           `json:"presentAddress"`
	PermanentAddress       *string           `json:"permanentAddress"`
	BloodGroup             *string           `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Designation            *string           `json:"designation"`
	ManagementDepartmentID *string           `json:"managementDepartmentId" validate:"omitempty,uuid"`
	ProfileImage           *string           `json:"profileImage"`
}
