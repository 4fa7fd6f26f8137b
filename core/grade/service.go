package grade

import (
	"errors"
	"strconv"

	"github.com/motembo/campus/core"
)

var (
	// errors
	ErrNotFound       = errors.New("grade not found")
	ErrInvalidLetter  = errors.New("invalid letter grade")
	ErrInvalidCredits = errors.New("credits must be a positive integer")
)

type (
	Repository interface {
		QueryGradesByStudent(student string) ([]Grade, error)
		// UpsertGrade rewrites the letter and credits of the row keyed by
		// (Student, Course) when present, else appends a new row. Rows are
		// never deleted.
		UpsertGrade(g Grade) (Grade, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryByStudent(uname string) ([]Grade, error) {
	return svc.repo.QueryGradesByStudent(core.CleanString(uname, true /* lower */))
}

func (svc *Service) Upsert(ng NewGrade) (Grade, error) {
	if err := ng.Validate(); err != nil {
		return Grade{}, err
	}
	return svc.repo.UpsertGrade(Grade{
		Student: ng.Student,
		Course:  ng.Course,
		Letter:  ng.Letter,
		Credits: ng.Credits,
	})
}

// Modify rewrites the idx-th (1-based) of the student's grade rows with a new
// letter and credits. Fails with ErrNotFound when the selection does not exist.
func (svc *Service) Modify(student string, idx int, letter, credits string) (Grade, error) {
	grades, err := svc.QueryByStudent(student)
	if err != nil {
		return Grade{}, err
	}
	if idx < 1 || idx > len(grades) {
		return Grade{}, ErrNotFound
	}
	sel := grades[idx-1]
	return svc.Upsert(NewGrade{
		Student: sel.Student,
		Course:  sel.Course,
		Letter:  letter,
		Credits: credits,
	})
}

// CGPA computes the credit-weighted mean of the student's grade points.
// Rows whose credits fail to parse are excluded from both numerator and
// denominator; with no usable rows the CGPA is 0.
func (svc *Service) CGPA(uname string) (float64, error) {
	grades, err := svc.QueryByStudent(uname)
	if err != nil {
		return 0, err
	}
	var totalPoints float64
	var totalCredits int
	for _, g := range grades {
		credits, err := strconv.Atoi(g.Credits)
		if err != nil {
			continue
		}
		totalPoints += Points(g.Letter) * float64(credits)
		totalCredits += credits
	}
	if totalCredits == 0 {
		return 0, nil
	}
	return totalPoints / float64(totalCredits), nil
}
