package student

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukane-philemon/gradeboard/internal/db"
)

func TestMintID(t *testing.T) {
	assert.Equal(t, "100000001", MintID(0))
	assert.Equal(t, "100000029", MintID(28))
	assert.Equal(t, "100000100", MintID(99))
}

func TestSeed(t *testing.T) {
	seed := Seed()
	require.Len(t, seed, 29)

	var sarah int
	for _, s := range seed {
		assert.Len(t, s.ID, 9)
		assert.True(t, IsValidDate(s.Date), s.Date)
		if s.ID == "100000003" {
			sarah++
		}
	}
	assert.Equal(t, 2, sarah)

	// Seed hands out fresh records every time.
	seed[0].Name = "changed"
	assert.Equal(t, "Andrew Young", Seed()[0].Name)
}

func TestClone(t *testing.T) {
	s := &Student{ID: "100000001", Name: "Morgan Smith", Grade: 98}
	c := s.Clone()
	c.Grade = 10
	assert.Equal(t, float64(98), s.Grade)
}

func TestUpdateStudentApply(t *testing.T) {
	s := &Student{ID: "100000001", Name: "Morgan Smith", Grade: 98, Subject: "Algebra", City: "New York"}
	name, grade := "Morgan Smyth", 75.5
	(&UpdateStudent{Name: &name, Grade: &grade}).Apply(s)

	assert.Equal(t, "100000001", s.ID)
	assert.Equal(t, "Morgan Smyth", s.Name)
	assert.Equal(t, 75.5, s.Grade)
	assert.Equal(t, "Algebra", s.Subject)
	assert.Equal(t, "New York", s.City)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"15/01/2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"1/2/2024", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), true},
		{"31/02/2024", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), true},
		{"05abc/01/2024", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), true},
		{"01/01/99", time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"2024-01-15", time.Time{}, false},
		{"aa/01/2024", time.Time{}, false},
		{"01/01", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.True(t, tt.want.Equal(got), "%s: got %v", tt.in, got)
		}
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "04/02/2024", FormatDate(time.Date(2024, 2, 4, 10, 0, 0, 0, time.UTC)))
}

func TestNewStudentValidate(t *testing.T) {
	ns := &NewStudent{
		Name:    "  Test Student ",
		Date:    "15/03/2024",
		Grade:   85,
		Subject: "Physics",
		Email:   " Test@Example.com",
	}
	require.NoError(t, ns.Validate())
	assert.Equal(t, "Test Student", ns.Name)
	assert.Equal(t, "test@example.com", ns.Email)

	bad := &NewStudent{Date: "2024-03-15", Grade: 101, Subject: "Mathematics", Email: "nope"}
	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, db.ErrorInvalidRequest))

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	fields := make(map[string]string)
	for _, f := range ve.Fields {
		fields[f.Field] = f.Error
	}
	assert.Equal(t, "name is required", fields["name"])
	assert.Equal(t, "date must be a valid date in the DD/MM/YYYY format", fields["date"])
	assert.Equal(t, "subject must be one of the listed subjects", fields["subject"])
	assert.Contains(t, fields, "grade")
	assert.Contains(t, fields, "email")
}

func TestUpdateStudentValidate(t *testing.T) {
	grade := -1.0
	err := (&UpdateStudent{Grade: &grade}).Validate()
	assert.True(t, errors.Is(err, db.ErrorInvalidRequest))

	blank := "   "
	err = (&UpdateStudent{Name: &blank}).Validate()
	assert.True(t, errors.Is(err, db.ErrorInvalidRequest))

	subject := "Botany"
	assert.NoError(t, (&UpdateStudent{Subject: &subject}).Validate())
	assert.NoError(t, (&UpdateStudent{}).Validate())
}
