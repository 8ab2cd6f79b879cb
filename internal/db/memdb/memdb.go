// Package memdb is an in-memory roster.
package memdb

import (
	"context"
	"fmt"
	"sync"

	"github.com/ukane-philemon/gradeboard/api"
	"github.com/ukane-philemon/gradeboard/internal/db"
	"github.com/ukane-philemon/gradeboard/internal/student"
)

// Check that *MemDB implements api.Database.
var _ api.Database = (*MemDB)(nil)

// MemDB implements api.Database over a slice of records.
type MemDB struct {
	mtx     sync.RWMutex
	records []*student.Student
}

// New returns a MemDB holding copies of records.
func New(records []*student.Student) *MemDB {
	mdb := &MemDB{}
	mdb.records = cloneAll(records)
	return mdb
}

func cloneAll(records []*student.Student) []*student.Student {
	c := make([]*student.Student, 0, len(records))
	for _, s := range records {
		c = append(c, s.Clone())
	}
	return c
}

// index returns the position of the first record with id, or -1. Must be
// called with the lock held.
func (mdb *MemDB) index(id string) int {
	for i, s := range mdb.records {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Students returns a copy of every record in insertion order. Implements
// api.Database.
func (mdb *MemDB) Students() ([]*student.Student, error) {
	mdb.mtx.RLock()
	defer mdb.mtx.RUnlock()
	return cloneAll(mdb.records), nil
}

// Student returns the first record with the provided id. Implements
// api.Database.
func (mdb *MemDB) Student(id string) (*student.Student, error) {
	mdb.mtx.RLock()
	defer mdb.mtx.RUnlock()

	i := mdb.index(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: student %s", db.ErrorNotFound, id)
	}
	return mdb.records[i].Clone(), nil
}

// AddStudent appends a record built from ns with a freshly minted ID.
// Implements api.Database.
func (mdb *MemDB) AddStudent(ns *student.NewStudent) (*student.Student, error) {
	if ns == nil {
		return nil, fmt.Errorf("%w: missing student", db.ErrorInvalidRequest)
	}

	mdb.mtx.Lock()
	defer mdb.mtx.Unlock()

	s := ns.Student(student.MintID(len(mdb.records)))
	mdb.records = append(mdb.records, s)
	return s.Clone(), nil
}

// UpdateStudent merges us onto the first record with the provided id.
// Implements api.Database.
func (mdb *MemDB) UpdateStudent(id string, us *student.UpdateStudent) (*student.Student, error) {
	if us == nil {
		return nil, fmt.Errorf("%w: missing student update", db.ErrorInvalidRequest)
	}

	mdb.mtx.Lock()
	defer mdb.mtx.Unlock()

	i := mdb.index(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: student %s", db.ErrorNotFound, id)
	}

	us.Apply(mdb.records[i])
	return mdb.records[i].Clone(), nil
}

// RemoveStudent deletes the first record with the provided id. Implements
// api.Database.
func (mdb *MemDB) RemoveStudent(id string) error {
	mdb.mtx.Lock()
	defer mdb.mtx.Unlock()

	i := mdb.index(id)
	if i < 0 {
		return fmt.Errorf("%w: student %s", db.ErrorNotFound, id)
	}

	mdb.records = append(mdb.records[:i], mdb.records[i+1:]...)
	return nil
}

// SeedStudents inserts copies of records if the roster is empty. Implements
// api.Database.
func (mdb *MemDB) SeedStudents(records []*student.Student) (int, error) {
	mdb.mtx.Lock()
	defer mdb.mtx.Unlock()

	if len(mdb.records) > 0 {
		return 0, nil
	}
	mdb.records = cloneAll(records)
	return len(records), nil
}

// ClearStudents removes every record. Implements api.Database.
func (mdb *MemDB) ClearStudents() error {
	mdb.mtx.Lock()
	mdb.records = nil
	mdb.mtx.Unlock()
	return nil
}

// Shutdown implements api.Database. There is nothing to release.
func (mdb *MemDB) Shutdown(context.Context) error {
	return nil
}
