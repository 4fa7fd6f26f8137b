package filerepos_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motembo/campus/core/grade"
	filerepos "github.com/motembo/campus/storage/records"
	testutil "github.com/motembo/campus/tests"
)

func TestGradeUpsertIsIdempotentPerKey(t *testing.T) {
	store := testutil.NewStore(t)
	svc := grade.NewService(filerepos.NewGradeRepository(store))

	_, err := svc.Upsert(grade.NewGrade{Student: "s1", Course: "CS101", Letter: "B", Credits: "3"})
	require.NoError(t, err)
	_, err = svc.Upsert(grade.NewGrade{Student: "s1", Course: "CS101", Letter: "A", Credits: "4"})
	require.NoError(t, err)

	rows, err := store.Read("grades")
	require.NoError(t, err)
	require.Len(t, rows, 1, "at most one row per (student, course)")
	assert.Equal(t, []string{"s1", "CS101", "A", "4"}, rows[0])
}

func TestGradeUpsertAppendsNewKeys(t *testing.T) {
	store := testutil.NewStore(t)
	svc := grade.NewService(filerepos.NewGradeRepository(store))

	_, err := svc.Upsert(grade.NewGrade{Student: "s1", Course: "CS101", Letter: "A", Credits: "3"})
	require.NoError(t, err)
	_, err = svc.Upsert(grade.NewGrade{Student: "s1", Course: "CS102", Letter: "B", Credits: "4"})
	require.NoError(t, err)
	_, err = svc.Upsert(grade.NewGrade{Student: "s2", Course: "CS101", Letter: "C", Credits: "3"})
	require.NoError(t, err)

	grades, err := svc.QueryByStudent("s1")
	require.NoError(t, err)
	require.Len(t, grades, 2)
	assert.Equal(t, "CS101", grades[0].Course)
	assert.Equal(t, "CS102", grades[1].Course)
}

func TestGradeValidation(t *testing.T) {
	store := testutil.NewStore(t)
	svc := grade.NewService(filerepos.NewGradeRepository(store))

	tests := []struct {
		name    string
		ng      grade.NewGrade
		wantErr error
	}{
		{name: "bad letter", ng: grade.NewGrade{Student: "s1", Course: "CS101", Letter: "E", Credits: "3"}, wantErr: grade.ErrInvalidLetter},
		{name: "zero credits", ng: grade.NewGrade{Student: "s1", Course: "CS101", Letter: "A", Credits: "0"}, wantErr: grade.ErrInvalidCredits},
		{name: "non-numeric credits", ng: grade.NewGrade{Student: "s1", Course: "CS101", Letter: "A", Credits: "three"}, wantErr: grade.ErrInvalidCredits},
		{name: "ok", ng: grade.NewGrade{Student: "s1", Course: "CS101", Letter: "A+", Credits: "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upsert(tt.ng)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGradeCGPA(t *testing.T) {
	store := testutil.NewStore(t)
	svc := grade.NewService(filerepos.NewGradeRepository(store))

	testutil.AppendRow(t, store, "grades", "s1", "CS101", "A", "3")
	testutil.AppendRow(t, store, "grades", "s1", "CS102", "B", "4")

	cgpa, err := svc.CGPA("s1")
	require.NoError(t, err)
	// (3.75*3 + 3.0*4) / 7
	assert.InDelta(t, 3.3214, cgpa, 0.0001)
	assert.Equal(t, "3.32", fmt.Sprintf("%.2f", cgpa))
}

func TestGradeCGPANoRows(t *testing.T) {
	store := testutil.NewStore(t)
	svc := grade.NewService(filerepos.NewGradeRepository(store))

	cgpa, err := svc.CGPA("ghost")
	require.NoError(t, err)
	assert.Zero(t, cgpa)
}

func TestGradeCGPASkipsUnparsableCredits(t *testing.T) {
	store := testutil.NewStore(t)
	svc := grade.NewService(filerepos.NewGradeRepository(store))

	testutil.AppendRow(t, store, "grades", "s1", "CS101", "A", "3")
	testutil.AppendRow(t, store, "grades", "s1", "CS102", "B+", "x")

	// the unparsable row is excluded from numerator and denominator
	cgpa, err := svc.CGPA("s1")
	require.NoError(t, err)
	assert.InDelta(t, 3.75, cgpa, 0.0001)
}

func TestGradeModify(t *testing.T) {
	store := testutil.NewStore(t)
	svc := grade.NewService(filerepos.NewGradeRepository(store))

	testutil.AppendRow(t, store, "grades", "s1", "CS101", "A", "3")
	testutil.AppendRow(t, store, "grades", "s1", "CS102", "B", "4")

	g, err := svc.Modify("s1", 2, "C+", "5")
	require.NoError(t, err)
	assert.Equal(t, "CS102", g.Course)

	rows, err := store.Read("grades")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"s1", "CS102", "C+", "5"}, rows[1])
}

func TestGradeModifyBadSelection(t *testing.T) {
	store := testutil.NewStore(t)
	svc := grade.NewService(filerepos.NewGradeRepository(store))

	testutil.AppendRow(t, store, "grades", "s1", "CS101", "A", "3")

	_, err := svc.Modify("s1", 0, "B", "3")
	assert.ErrorIs(t, err, grade.ErrNotFound)
	_, err = svc.Modify("s1", 2, "B", "3")
	assert.ErrorIs(t, err, grade.ErrNotFound)
	_, err = svc.Modify("ghost", 1, "B", "3")
	assert.ErrorIs(t, err, grade.ErrNotFound)
}

func TestGradeMalformedRowsSkipped(t *testing.T) {
	store := testutil.NewStore(t)
	svc := grade.NewService(filerepos.NewGradeRepository(store))

	testutil.AppendRow(t, store, "grades", "s1", "CS101", "A")
	testutil.AppendRow(t, store, "grades", "s1", "CS102", "B", "4")

	grades, err := svc.QueryByStudent("s1")
	require.NoError(t, err)
	require.Len(t, grades, 1)
	assert.Equal(t, "CS102", grades[0].Course)
}
