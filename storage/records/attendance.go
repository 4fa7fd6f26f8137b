package filerepos

import (
	"github.com/motembo/campus/core/attendance"
	"github.com/motembo/campus/storage/table"
)

// attendance table: student, course, date, presentFlag("1"/"0")
const attendanceTable = "attendance"

type attendanceRepository struct {
	store *table.Store
}

func NewAttendanceRepository(store *table.Store) attendance.Repository {
	return &attendanceRepository{store: store}
}

func record(row []string) attendance.Record {
	return attendance.Record{
		Student: row[0],
		Course:  row[1],
		Date:    row[2],
		Present: row[3],
	}
}

func (repo *attendanceRepository) QueryAttendanceByStudent(student string) ([]attendance.Record, error) {
	rows, err := repo.store.Read(attendanceTable)
	if err != nil {
		return nil, err
	}
	var records []attendance.Record
	for _, row := range rows {
		if len(row) < 4 || row[0] != student {
			continue
		}
		records = append(records, record(row))
	}
	return records, nil
}

func (repo *attendanceRepository) QueryAttendanceByCourseDate(course, date string) ([]attendance.Record, error) {
	rows, err := repo.store.Read(attendanceTable)
	if err != nil {
		return nil, err
	}
	var records []attendance.Record
	for _, row := range rows {
		if len(row) < 4 || row[1] != course || row[2] != date {
			continue
		}
		records = append(records, record(row))
	}
	return records, nil
}

func (repo *attendanceRepository) ReplaceRecord(rec attendance.Record) (attendance.Record, error) {
	rows, err := repo.store.Read(attendanceTable)
	if err != nil {
		return attendance.Record{}, err
	}
	kept := make([][]string, 0, len(rows)+1)
	for _, row := range rows {
		if len(row) >= 4 && row[0] == rec.Student && row[1] == rec.Course && row[2] == rec.Date {
			continue
		}
		kept = append(kept, row)
	}
	kept = append(kept, []string{rec.Student, rec.Course, rec.Date, rec.Present})
	if err := repo.store.Write(attendanceTable, kept); err != nil {
		return attendance.Record{}, err
	}
	return rec, nil
}
