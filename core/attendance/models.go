package attendance

import (
	"github.com/motembo/campus/core"
)

// Present flag values as persisted.
const (
	FlagPresent = "1"
	FlagAbsent  = "0"
)

// Status is the rendered state of one student on a course sheet.
type Status string

const (
	StatusPresent     Status = "Present"
	StatusAbsent      Status = "Absent"
	StatusNotRecorded Status = "Not Recorded"
)

// Record is one attendance mark. The unique key is (Student, Course, Date);
// writes replace any existing row with the same key.
type Record struct {
	Student string `json:"student"`
	Course  string `json:"course"`
	Date    string `json:"date"` // YYYY-MM-DD by convention, not validated
	Present string `json:"present"`
}

// Day is one dated mark within a student's course log.
type Day struct {
	Date    string `json:"date"`
	Present bool   `json:"present"`
}

// CourseLog groups a student's marks for one course, in table order.
type CourseLog struct {
	Course string `json:"course"`
	Days   []Day  `json:"days"`
}

// SheetEntry is one student's state on a (course, date) sheet.
type SheetEntry struct {
	Student string `json:"student"`
	Status  Status `json:"status"`
}

// NewRecord contains information needed to mark attendance.
type NewRecord struct {
	Student string `json:"student" validate:"required"`
	Course  string `json:"course" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Present string `json:"present" validate:"required,oneof=0 1"`
}

func (nr *NewRecord) Validate() error {
	nr.Student = core.CleanString(nr.Student, true /* lower */)
	nr.Course = core.CleanString(nr.Course)
	nr.Date = core.CleanString(nr.Date)
	nr.Present = core.CleanString(nr.Present)

	if err := core.Validate.Struct(nr); err != nil {
		return core.TranslateError(err)
	}
	return nil
}
