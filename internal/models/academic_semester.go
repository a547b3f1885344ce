package models

import "time"

// Semester titles follow the institution calendar.
const (
	SemesterTitleAutumn = "Autumn"
	SemesterTitleSummer = "Summer"
	SemesterTitleFall   = "Fall"
)

// SemesterTitleCodes maps each semester title to its canonical code. Create
// and update reject any (title, code) pair that disagrees with this mapping.
var SemesterTitleCodes = map[string]string{
	SemesterTitleAutumn: "01",
	SemesterTitleSummer: "02",
	SemesterTitleFall:   "03",
}

// SemesterMonths enumerates the accepted start/end month names.
var SemesterMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// AcademicSemester models one semester of an academic year. The (title, year)
// pair is unique.
type AcademicSemester struct {
	ID         string    `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Year       int       `db:"year" json:"year"`
	Code       string    `db:"code" json:"code"`
	StartMonth string    `db:"start_month" json:"startMonth"`
	EndMonth   string    `db:"end_month" json:"endMonth"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// AcademicSemesterFilter defines list filters for semesters.
type AcademicSemesterFilter struct {
	SearchTerm string
	Title      string
	Code       string
	Year       *int
	Options    ListOptions
}
