package mongodb

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ukane-philemon/gradeboard/api"
	"github.com/ukane-philemon/gradeboard/internal/db"
	"github.com/ukane-philemon/gradeboard/internal/pagestate"
)

const (
	// Collections
	studentCollection = "students"
	storageCollection = "storage"

	// Keys
	dbIDKey          = "_id"
	studentIDKey     = "id"
	seqKey           = "seq"
	valueKey         = "value"
	lastUpdatedAtKey = "lastUpdatedAt"

	// Actions
	actionSet = "$set"
)

// Check that *MongoDB implements api.Database and pagestate.Backend.
var (
	_ api.Database      = (*MongoDB)(nil)
	_ pagestate.Backend = (*MongoDB)(nil)
)

// MongoDB implements api.Database and pagestate.Backend.
type MongoDB struct {
	ctx    context.Context
	db     *mongo.Database
	logger log.Logger

	// rosterMtx serializes roster writes so minted IDs and insertion
	// sequence numbers are never handed out twice.
	rosterMtx         sync.Mutex
	studentCollection *mongo.Collection
	storageCollection *mongo.Collection
}

// New connects to a mongo database and returns a new instance of *MongoDB.
func New(ctx context.Context, dbName string, connectionURL string, logger log.Logger) (*MongoDB, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	database, err := db.NewMongoDB(ctx, dbName, connectionURL)
	if err != nil {
		return nil, err
	}

	logger = log.With(logger, "component", "mongodb", "db", dbName)
	level.Info(logger).Log("msg", "database has been connected and pinged successfully")

	// Index the roster for first-match lookups by student ID.
	studentCollection := database.Collection(studentCollection)
	_, err = studentCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: studentIDKey, Value: 1}, {Key: seqKey, Value: 1}}},
		{Keys: bson.D{{Key: seqKey, Value: 1}}},
	})
	if err != nil {
		db.ShutdownMongoDB(context.Background(), database)
		return nil, fmt.Errorf("studentCollection.Indexes().CreateMany error: %w", err)
	}

	return &MongoDB{
		ctx:               ctx,
		db:                database,
		logger:            logger,
		studentCollection: studentCollection,
		storageCollection: database.Collection(storageCollection),
	}, nil
}

// Shutdown attempts to shutdown the database.
func (mdb *MongoDB) Shutdown(ctx context.Context) error {
	err := db.ShutdownMongoDB(ctx, mdb.db)
	if err != nil {
		return err
	}

	level.Info(mdb.logger).Log("msg", "database has been shutdown successfully")

	return nil
}
