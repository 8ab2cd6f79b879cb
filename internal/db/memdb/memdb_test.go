package memdb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukane-philemon/gradeboard/internal/db"
	"github.com/ukane-philemon/gradeboard/internal/student"
)

func newStudent(name string, grade float64) *student.NewStudent {
	return &student.NewStudent{Name: name, Date: "01/02/2024", Grade: grade, Subject: "Physics"}
}

func TestAddMintsID(t *testing.T) {
	records := make([]*student.Student, 0, 28)
	for i := 0; i < 28; i++ {
		records = append(records, &student.Student{ID: student.MintID(i), Name: "Student"})
	}
	mdb := New(records)

	s, err := mdb.AddStudent(newStudent("New Student", 150))
	require.NoError(t, err)
	assert.Equal(t, "100000029", s.ID)
	// The roster itself does not clamp grades.
	assert.Equal(t, float64(150), s.Grade)

	all, err := mdb.Students()
	require.NoError(t, err)
	require.Len(t, all, 29)
	assert.Equal(t, "New Student", all[28].Name)

	_, err = mdb.AddStudent(nil)
	assert.True(t, errors.Is(err, db.ErrorInvalidRequest))
}

func TestIDCollisionAfterRemove(t *testing.T) {
	mdb := New(nil)
	first, _ := mdb.AddStudent(newStudent("A", 1))
	second, _ := mdb.AddStudent(newStudent("B", 2))
	require.NoError(t, mdb.RemoveStudent(first.ID))

	third, err := mdb.AddStudent(newStudent("C", 3))
	require.NoError(t, err)
	assert.Equal(t, second.ID, third.ID)

	// Lookups return the first record with the ID.
	got, err := mdb.Student(third.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Name)
}

func TestFirstMatchWins(t *testing.T) {
	mdb := New(student.Seed())

	got, err := mdb.Student("100000003")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Davis", got.Name)
	assert.Equal(t, "17/01/2024", got.Date)

	require.NoError(t, mdb.RemoveStudent("100000003"))
	got, err = mdb.Student("100000003")
	require.NoError(t, err)
	assert.Equal(t, "19/01/2024", got.Date)

	require.NoError(t, mdb.RemoveStudent("100000003"))
	_, err = mdb.Student("100000003")
	assert.True(t, errors.Is(err, db.ErrorNotFound))
	assert.True(t, errors.Is(mdb.RemoveStudent("100000003"), db.ErrorNotFound))

	all, _ := mdb.Students()
	assert.Len(t, all, 27)
}

func TestUpdateStudent(t *testing.T) {
	mdb := New(student.Seed())

	grade := 99.5
	city := "Lagos"
	updated, err := mdb.UpdateStudent("100000003", &student.UpdateStudent{Grade: &grade, City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Sarah Davis", updated.Name)
	assert.Equal(t, grade, updated.Grade)
	assert.Equal(t, city, updated.City)

	// Only the first record changes.
	all, _ := mdb.Students()
	var grades []float64
	for _, s := range all {
		if s.ID == "100000003" {
			grades = append(grades, s.Grade)
		}
	}
	assert.Equal(t, []float64{99.5, 92}, grades)

	_, err = mdb.UpdateStudent("missing", &student.UpdateStudent{Grade: &grade})
	assert.True(t, errors.Is(err, db.ErrorNotFound))
	_, err = mdb.UpdateStudent("100000003", nil)
	assert.True(t, errors.Is(err, db.ErrorInvalidRequest))
}

func TestStudentsReturnsCopies(t *testing.T) {
	mdb := New(student.Seed())

	all, _ := mdb.Students()
	all[0].Name = "Changed"

	again, _ := mdb.Students()
	assert.Len(t, again, 29)
	assert.Equal(t, "Andrew Young", again[0].Name)

	got, _ := mdb.Student(again[0].ID)
	got.Grade = -1
	again, _ = mdb.Students()
	assert.NotEqual(t, float64(-1), again[0].Grade)
}

func TestSeedAndClear(t *testing.T) {
	mdb := New(nil)

	n, err := mdb.SeedStudents(student.Seed())
	require.NoError(t, err)
	assert.Equal(t, 29, n)

	n, err = mdb.SeedStudents(student.Seed())
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, mdb.ClearStudents())
	all, _ := mdb.Students()
	assert.Empty(t, all)

	s, err := mdb.AddStudent(newStudent("First", 70))
	require.NoError(t, err)
	assert.Equal(t, "100000001", s.ID)

	assert.NoError(t, mdb.Shutdown(context.Background()))
}
