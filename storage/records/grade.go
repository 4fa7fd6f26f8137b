package filerepos

import (
	"github.com/motembo/campus/core/grade"
	"github.com/motembo/campus/storage/table"
)

// grades table: student, course, letter, credits
const gradeTable = "grades"

type gradeRepository struct {
	store *table.Store
}

func NewGradeRepository(store *table.Store) grade.Repository {
	return &gradeRepository{store: store}
}

func (repo *gradeRepository) QueryGradesByStudent(student string) ([]grade.Grade, error) {
	rows, err := repo.store.Read(gradeTable)
	if err != nil {
		return nil, err
	}
	var grades []grade.Grade
	for _, row := range rows {
		if len(row) < 4 || row[0] != student {
			continue
		}
		grades = append(grades, grade.Grade{
			Student: row[0],
			Course:  row[1],
			Letter:  row[2],
			Credits: row[3],
		})
	}
	return grades, nil
}

func (repo *gradeRepository) UpsertGrade(g grade.Grade) (grade.Grade, error) {
	rows, err := repo.store.Read(gradeTable)
	if err != nil {
		return grade.Grade{}, err
	}
	var updated bool
	for _, row := range rows {
		if len(row) >= 4 && row[0] == g.Student && row[1] == g.Course {
			row[2] = g.Letter
			row[3] = g.Credits
			updated = true
		}
	}
	if !updated {
		rows = append(rows, []string{g.Student, g.Course, g.Letter, g.Credits})
	}
	if err := repo.store.Write(gradeTable, rows); err != nil {
		return grade.Grade{}, err
	}
	return g, nil
}
