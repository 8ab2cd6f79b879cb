package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ukane-philemon/gradeboard/internal/db"
	"github.com/ukane-philemon/gradeboard/internal/student"
)

var (
	bySeq     = bson.D{{Key: seqKey, Value: 1}}
	bySeqDesc = bson.D{{Key: seqKey, Value: -1}}
)

// Students returns a copy of every record in insertion order. Implements
// api.Database.
func (mdb *MongoDB) Students() ([]*student.Student, error) {
	cursor, err := mdb.studentCollection.Find(mdb.ctx, bson.M{}, options.Find().SetSort(bySeq))
	if err != nil {
		return nil, fmt.Errorf("studentCollection.Find error: %w", err)
	}

	var docs []*dbStudent
	if err = cursor.All(mdb.ctx, &docs); err != nil {
		return nil, fmt.Errorf("cursor.All error: %w", err)
	}

	students := make([]*student.Student, 0, len(docs))
	for _, doc := range docs {
		students = append(students, doc.student())
	}

	return students, nil
}

// firstStudent returns the document of the first record with id.
func (mdb *MongoDB) firstStudent(id string) (*dbStudent, error) {
	var doc *dbStudent
	err := mdb.studentCollection.FindOne(mdb.ctx, bson.M{studentIDKey: id}, options.FindOne().SetSort(bySeq)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: student %s", db.ErrorNotFound, id)
		}
		return nil, fmt.Errorf("studentCollection.FindOne error: %w", err)
	}
	return doc, nil
}

// Student returns the first record with the provided id. Implements
// api.Database.
func (mdb *MongoDB) Student(id string) (*student.Student, error) {
	doc, err := mdb.firstStudent(id)
	if err != nil {
		return nil, err
	}
	return doc.student(), nil
}

// nextSeq returns the sequence number for the next roster document. Must be
// called with the roster lock held.
func (mdb *MongoDB) nextSeq() (int64, error) {
	var last *dbStudent
	err := mdb.studentCollection.FindOne(mdb.ctx, bson.M{}, options.FindOne().SetSort(bySeqDesc)).Decode(&last)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 1, nil
		}
		return 0, fmt.Errorf("studentCollection.FindOne error: %w", err)
	}
	return last.Seq + 1, nil
}

// AddStudent appends a record built from ns with a freshly minted ID.
// Implements api.Database.
func (mdb *MongoDB) AddStudent(ns *student.NewStudent) (*student.Student, error) {
	if ns == nil {
		return nil, fmt.Errorf("%w: missing student", db.ErrorInvalidRequest)
	}

	mdb.rosterMtx.Lock()
	defer mdb.rosterMtx.Unlock()

	count, err := mdb.studentCollection.CountDocuments(mdb.ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("studentCollection.CountDocuments error: %w", err)
	}

	seq, err := mdb.nextSeq()
	if err != nil {
		return nil, err
	}

	doc := &dbStudent{
		DBID:    primitive.NewObjectID(),
		Seq:     seq,
		Student: *ns.Student(student.MintID(int(count))),
	}

	_, err = mdb.studentCollection.InsertOne(mdb.ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("studentCollection.InsertOne error: %w", err)
	}

	return doc.student(), nil
}

// UpdateStudent merges us onto the first record with the provided id.
// Implements api.Database.
func (mdb *MongoDB) UpdateStudent(id string, us *student.UpdateStudent) (*student.Student, error) {
	if us == nil {
		return nil, fmt.Errorf("%w: missing student update", db.ErrorInvalidRequest)
	}

	mdb.rosterMtx.Lock()
	defer mdb.rosterMtx.Unlock()

	doc, err := mdb.firstStudent(id)
	if err != nil {
		return nil, err
	}

	us.Apply(&doc.Student)

	_, err = mdb.studentCollection.ReplaceOne(mdb.ctx, bson.M{dbIDKey: doc.DBID}, doc)
	if err != nil {
		return nil, fmt.Errorf("studentCollection.ReplaceOne error: %w", err)
	}

	return doc.student(), nil
}

// RemoveStudent deletes the first record with the provided id. Implements
// api.Database.
func (mdb *MongoDB) RemoveStudent(id string) error {
	mdb.rosterMtx.Lock()
	defer mdb.rosterMtx.Unlock()

	doc, err := mdb.firstStudent(id)
	if err != nil {
		return err
	}

	_, err = mdb.studentCollection.DeleteOne(mdb.ctx, bson.M{dbIDKey: doc.DBID})
	if err != nil {
		return fmt.Errorf("studentCollection.DeleteOne error: %w", err)
	}

	return nil
}

// SeedStudents inserts records as they are if the roster is empty. Implements
// api.Database.
func (mdb *MongoDB) SeedStudents(records []*student.Student) (int, error) {
	mdb.rosterMtx.Lock()
	defer mdb.rosterMtx.Unlock()

	count, err := mdb.studentCollection.CountDocuments(mdb.ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("studentCollection.CountDocuments error: %w", err)
	}

	if count > 0 || len(records) == 0 {
		return 0, nil
	}

	docs := make([]any, 0, len(records))
	for i, s := range records {
		docs = append(docs, &dbStudent{
			DBID:    primitive.NewObjectID(),
			Seq:     int64(i + 1),
			Student: *s,
		})
	}

	_, err = mdb.studentCollection.InsertMany(mdb.ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("studentCollection.InsertMany error: %w", err)
	}

	return len(docs), nil
}

// ClearStudents removes every record. Implements api.Database.
func (mdb *MongoDB) ClearStudents() error {
	mdb.rosterMtx.Lock()
	defer mdb.rosterMtx.Unlock()

	_, err := mdb.studentCollection.DeleteMany(mdb.ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("studentCollection.DeleteMany error: %w", err)
	}

	return nil
}
