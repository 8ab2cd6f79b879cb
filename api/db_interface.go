package api

import (
	"context"

	"github.com/ukane-philemon/gradeboard/internal/student"
)

// Database is the roster of student exam records. Records are kept in
// insertion order and IDs are not unique: lookups, updates and removals act
// on the first record with the ID.
type Database interface {
	// Students returns a copy of every record in insertion order.
	Students() ([]*student.Student, error)
	// Student returns the first record with the provided id. Returns
	// db.ErrorNotFound if no record has the id.
	Student(id string) (*student.Student, error)
	// AddStudent appends a record built from ns. Its ID is minted from the
	// current number of records and is returned with the saved record.
	AddStudent(ns *student.NewStudent) (*student.Student, error)
	// UpdateStudent merges the non-nil fields of us onto the first record with
	// the provided id. Returns db.ErrorNotFound if no record has the id.
	UpdateStudent(id string, us *student.UpdateStudent) (*student.Student, error)
	// RemoveStudent deletes the first record with the provided id. Returns
	// db.ErrorNotFound if no record has the id.
	RemoveStudent(id string) error
	// SeedStudents inserts records as they are if the roster is empty. It
	// returns the number of records inserted.
	SeedStudents(records []*student.Student) (int, error)
	// ClearStudents removes every record.
	ClearStudents() error
	// Shutdown gracefully disconnects the database after the server is
	// shutdown.
	Shutdown(ctx context.Context) error
}
