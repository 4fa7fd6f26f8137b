package grade

import (
	"strconv"

	"github.com/motembo/campus/core"
)

// Letters lists the recognized letter grades in display order.
var Letters = []string{"A+", "A", "B+", "B", "C+", "C", "D", "F"}

// gradePoints maps a letter grade to its grade-point equivalent.
// Letters outside the table weigh 0 points in the CGPA.
var gradePoints = map[string]float64{
	"A+": 4.0, "A": 3.75, "B+": 3.5, "B": 3.0,
	"C+": 2.5, "C": 2.0, "D": 1.5, "F": 0.0,
}

// ValidLetter reports whether letter is a recognized letter grade.
func ValidLetter(letter string) bool {
	_, ok := gradePoints[letter]
	return ok
}

// Points returns the grade-point equivalent of letter; 0 when unknown.
func Points(letter string) float64 {
	return gradePoints[letter]
}

// Grade is one graded course for one student. The unique key is
// (Student, Course). Credits stays textual as persisted; rows whose
// credits fail to parse are excluded from the CGPA.
type Grade struct {
	Student string `json:"student"`
	Course  string `json:"course"`
	Letter  string `json:"letter"`
	Credits string `json:"credits"`
}

// NewGrade contains information needed to record or update a Grade.
type NewGrade struct {
	Student string `json:"student" validate:"required"`
	Course  string `json:"course" validate:"required"`
	Letter  string `json:"letter" validate:"required,letter"`
	Credits string `json:"credits" validate:"required"`
}

func (ng *NewGrade) Validate() error {
	ng.Student = core.CleanString(ng.Student, true /* lower */)
	ng.Course = core.CleanString(ng.Course)
	ng.Letter = core.CleanString(ng.Letter)
	ng.Credits = core.CleanString(ng.Credits)

	if err := core.Validate.Struct(ng); err != nil {
		if core.FailedTag(err, letterTag) {
			return core.NewValidationError(ErrInvalidLetter, core.FieldError{Field: "letter", Error: letterText})
		}
		return core.TranslateError(err)
	}
	if n, err := strconv.Atoi(ng.Credits); err != nil || n < 1 {
		return core.NewValidationError(ErrInvalidCredits, core.FieldError{Field: "credits", Error: ErrInvalidCredits.Error()})
	}
	return nil
}
