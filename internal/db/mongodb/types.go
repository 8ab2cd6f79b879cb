package mongodb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ukane-philemon/gradeboard/internal/student"
)

// dbStudent is a roster document. Seq is the insertion sequence number and
// orders the roster.
type dbStudent struct {
	DBID            primitive.ObjectID `bson:"_id"`
	Seq             int64              `bson:"seq"`
	student.Student `bson:",inline"`
}

func (ds *dbStudent) student() *student.Student {
	s := ds.Student
	return &s
}

type dbStorageItem struct {
	Key           string `bson:"_id"`
	Value         string `bson:"value"`
	LastUpdatedAt int64  `bson:"lastUpdatedAt"`
}
