package attendance

import (
	"errors"

	"github.com/motembo/campus/core"
	"github.com/motembo/campus/core/user"
)

var (
	// errors
	ErrUnknownStudent = errors.New("unknown student username")
)

type (
	Repository interface {
		QueryAttendanceByStudent(student string) ([]Record, error)
		QueryAttendanceByCourseDate(course, date string) ([]Record, error)
		// ReplaceRecord drops any row keyed by (Student, Course, Date) and
		// appends rec, so at most one row exists per key after the write.
		ReplaceRecord(rec Record) (Record, error)
	}

	Service struct {
		repo  Repository
		users *user.Service
	}
)

func NewService(repo Repository, users *user.Service) *Service {
	return &Service{repo: repo, users: users}
}

// Mark records one student's attendance for a (course, date), replacing any
// previous mark for the same key. The target must be an existing student
// account; anything else fails with ErrUnknownStudent.
func (svc *Service) Mark(nr NewRecord) (Record, error) {
	if err := nr.Validate(); err != nil {
		return Record{}, err
	}
	usr, err := svc.users.GetByUsername(nr.Student)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Record{}, ErrUnknownStudent
		}
		return Record{}, err
	}
	if !usr.IsStudent() {
		return Record{}, ErrUnknownStudent
	}
	return svc.repo.ReplaceRecord(Record{
		Student: nr.Student,
		Course:  nr.Course,
		Date:    nr.Date,
		Present: nr.Present,
	})
}

// LogByStudent returns the student's marks grouped by course, courses in
// first-seen table order.
func (svc *Service) LogByStudent(uname string) ([]CourseLog, error) {
	records, err := svc.repo.QueryAttendanceByStudent(core.CleanString(uname, true /* lower */))
	if err != nil {
		return nil, err
	}
	var logs []CourseLog
	byCourse := make(map[string]int)
	for _, rec := range records {
		idx, ok := byCourse[rec.Course]
		if !ok {
			idx = len(logs)
			byCourse[rec.Course] = idx
			logs = append(logs, CourseLog{Course: rec.Course})
		}
		logs[idx].Days = append(logs[idx].Days, Day{
			Date:    rec.Date,
			Present: rec.Present == FlagPresent,
		})
	}
	return logs, nil
}

// Sheet reports, for every known student, their state for a (course, date):
// Present, Absent, or Not Recorded when no row matches.
func (svc *Service) Sheet(course, date string) ([]SheetEntry, error) {
	students, err := svc.users.QueryByRole(user.RoleStudent)
	if err != nil {
		return nil, err
	}
	records, err := svc.repo.QueryAttendanceByCourseDate(core.CleanString(course), core.CleanString(date))
	if err != nil {
		return nil, err
	}
	marks := make(map[string]string, len(records))
	for _, rec := range records {
		marks[rec.Student] = rec.Present
	}

	entries := make([]SheetEntry, 0, len(students))
	for _, std := range students {
		entry := SheetEntry{Student: std.Username, Status: StatusNotRecorded}
		if flag, ok := marks[std.Username]; ok {
			if flag == FlagPresent {
				entry.Status = StatusPresent
			} else {
				entry.Status = StatusAbsent
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
